// core/embed/load_test.go
package embed

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const tinyTable = `3 2
Ghelix 0.5 -1.0
Lhelix 0.25 0.75
Kcoil -0.5 0.125
`

func TestLoadTinyTable(t *testing.T) {
	tbl, err := Load(strings.NewReader(tinyTable))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 3 || tbl.Dim() != 2 {
		t.Fatalf("Len=%d Dim=%d", tbl.Len(), tbl.Dim())
	}
	vec, ok := tbl.Vector("Lhelix")
	if !ok || vec[0] != 0.25 || vec[1] != 0.75 {
		t.Fatalf("Vector(Lhelix) = %v %v", vec, ok)
	}
	if _, ok := tbl.Vector("Xcoil"); ok {
		t.Fatal("unknown token reported as present")
	}
	// IDs follow sorted token order and stay stable.
	want := []string{"Ghelix", "Kcoil", "Lhelix"}
	for i, tok := range tbl.Tokens() {
		if tok != want[i] {
			t.Fatalf("Tokens()[%d] = %q, want %q", i, tok, want[i])
		}
		if id, _ := tbl.ID(tok); id != i || tbl.Token(i) != tok {
			t.Fatalf("ID/Token roundtrip broken for %q", tok)
		}
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := []struct {
		name, in, wantSub string
	}{
		{"missing header", "", "line 1"},
		{"short header", "5\n", "header"},
		{"bad count", "x 2\nA 1 2\n", "bad count"},
		{"bad dim", "1 0\nA\n", "bad dimension"},
		{"field count", "1 2\nGhelix 0.5\n", "want 3"},
		{"bad value", "1 2\nGhelix 0.5 oops\n", "bad value"},
		{"duplicate token", "2 1\nA 1\nA 2\n", "duplicate token"},
		{"count mismatch", "3 1\nA 1\nB 2\n", "header says 3"},
	}
	for _, c := range cases {
		_, err := Load(strings.NewReader(c.in))
		if err == nil || !strings.Contains(err.Error(), c.wantSub) {
			t.Fatalf("%s: err = %v, want substring %q", c.name, err, c.wantSub)
		}
	}
}

func TestLoadPathGzip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "emb.txt.gz")
	fh, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(fh)
	if _, err := gz.Write([]byte(tinyTable)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}
	tbl, err := LoadPath(p)
	if err != nil || tbl.Len() != 3 {
		t.Fatalf("LoadPath: %v", err)
	}
}

func TestNewRejectsMixedDimensions(t *testing.T) {
	_, err := New(map[string][]float32{"A": {1, 2}, "B": {1}})
	if err == nil {
		t.Fatal("expected dimension error")
	}
	if _, err := New(nil); err == nil {
		t.Fatal("expected empty-table error")
	}
}

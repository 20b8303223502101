// core/peptide/csv_test.go
package peptide

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeqCSV(t *testing.T) {
	p := filepath.Join(t.TempDir(), "seqs.csv")
	body := "id,sequence,label\np1,GLK,1\np2,AAW,0\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := LoadSeqCSV(p)
	if err != nil || len(rows) != 2 {
		t.Fatalf("LoadSeqCSV: %v (%d rows)", err, len(rows))
	}
	if rows[0].ID != "p1" || rows[0].Seq != "GLK" || rows[0].Label != 1 {
		t.Fatalf("row0 = %+v", rows[0])
	}
}

func TestLoadSeqCSVWithoutIDColumn(t *testing.T) {
	p := filepath.Join(t.TempDir(), "seqs.csv")
	if err := os.WriteFile(p, []byte("sequence,label\nGLK,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := LoadSeqCSV(p)
	if err != nil || len(rows) != 1 || rows[0].ID != "" || rows[0].Seq != "GLK" {
		t.Fatalf("rows=%+v err=%v", rows, err)
	}
}

func TestLoadStructCSVGzip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "structs.csv.gz")
	fh, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(fh)
	if _, err := gz.Write([]byte("sequence,structure\nGLK,HHC\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	rows, err := LoadStructCSV(p)
	if err != nil || len(rows) != 1 || rows[0].Structure != "HHC" {
		t.Fatalf("rows=%+v err=%v", rows, err)
	}
}

func TestLoadSeqCSVBadLabelType(t *testing.T) {
	p := filepath.Join(t.TempDir(), "seqs.csv")
	if err := os.WriteFile(p, []byte("sequence,label\nGLK,yes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSeqCSV(p); err == nil {
		t.Fatal("expected type error for non-numeric label")
	}
}

package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/unixpickle/wordembed/word2vec"

	"pepvec/pkg/api"
)

func TestWindowJSONLWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	in, errCh := StartWindowJSONLWriter(buf, 2)
	in <- &word2vec.Sample{Left: []string{"Ghelix"}, Word: "Lhelix", Right: []string{"Kcoil"}}
	in <- &word2vec.Sample{Word: "Acoil"}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("window writer: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d: %q", len(lines), buf.String())
	}

	var w api.WindowV1
	if err := json.Unmarshal([]byte(lines[0]), &w); err != nil {
		t.Fatalf("line 1: %v", err)
	}
	if w.Word != "Lhelix" || len(w.Left) != 1 || w.Left[0] != "Ghelix" || w.Right[0] != "Kcoil" {
		t.Fatalf("window: %+v", w)
	}

	// A lone word serializes without neighbor arrays.
	if strings.Contains(lines[1], "left") || strings.Contains(lines[1], "right") {
		t.Fatalf("empty neighbors should be omitted: %q", lines[1])
	}
}

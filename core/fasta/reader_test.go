package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadAll(t *testing.T) {
	in := strings.NewReader(">pep1 hemolytic example\nGIGK\nFLHS\n\n>pep2\nAKKL\n")
	recs, err := ReadAll(in)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}
	if recs[0].ID != "pep1" || recs[0].Seq != "GIGKFLHS" {
		t.Fatalf("record 0: %+v", recs[0])
	}
	if recs[1].ID != "pep2" || recs[1].Seq != "AKKL" {
		t.Fatalf("record 1: %+v", recs[1])
	}
}

func TestReadAllRejectsHeaderlessData(t *testing.T) {
	if _, err := ReadAll(strings.NewReader("GIGK\n")); err == nil ||
		!strings.Contains(err.Error(), "before first header") {
		t.Fatalf("got %v", err)
	}
	if _, err := ReadAll(strings.NewReader(">   \nGIGK\n")); err == nil ||
		!strings.Contains(err.Error(), "no id") {
		t.Fatalf("got %v", err)
	}
}

func TestReadAllEmptyInput(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(""))
	if err != nil || len(recs) != 0 {
		t.Fatalf("got %v, %v", recs, err)
	}
}

func TestReadPathGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peps.fasta.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(">pep1\nGIGK\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	recs, err := ReadPath(path)
	if err != nil {
		t.Fatalf("ReadPath: %v", err)
	}
	if len(recs) != 1 || recs[0].Seq != "GIGK" {
		t.Fatalf("records: %+v", recs)
	}
}

// internal/cliutil/cliutil_test.go
package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestPartition(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var s string
	fs.BoolVar(&b, "quiet", false, "")
	fs.StringVar(&s, "output", "", "")
	flagArgs, posArgs := Partition(fs, []string{"--quiet", "in1.csv", "--output", "jsonl", "--", "in2.csv"})
	if len(flagArgs) != 3 || flagArgs[0] != "--quiet" || flagArgs[1] != "--output" || flagArgs[2] != "jsonl" {
		t.Fatalf("flagArgs = %v", flagArgs)
	}
	if len(posArgs) != 2 || posArgs[0] != "in1.csv" || posArgs[1] != "in2.csv" {
		t.Fatalf("posArgs = %v", posArgs)
	}
}

func TestPartitionEqualsForm(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var s string
	fs.StringVar(&s, "output", "", "")
	flagArgs, posArgs := Partition(fs, []string{"--output=json", "-", "corpus.txt"})
	if len(flagArgs) != 1 || flagArgs[0] != "--output=json" {
		t.Fatalf("flagArgs = %v", flagArgs)
	}
	if len(posArgs) != 2 || posArgs[0] != "-" {
		t.Fatalf("posArgs = %v", posArgs)
	}
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	_ = os.WriteFile(a, []byte("sequence,label\n"), 0o644)
	_ = os.WriteFile(b, []byte("sequence,label\n"), 0o644)
	got, err := ExpandGlobs([]string{filepath.Join(dir, "*.csv")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if _, err := ExpandGlobs([]string{filepath.Join(dir, "*.tsv")}); err == nil {
		t.Fatal("expected error for glob with no matches")
	}
}

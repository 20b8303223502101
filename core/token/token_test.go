// core/token/token_test.go
package token

import (
	"errors"
	"testing"

	"pepvec-core/peptide"
)

func TestSplitPairsResiduesWithClasses(t *testing.T) {
	toks, err := Split(peptide.Record{ID: "p1", Seq: "GLK", Structure: "HHC"})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []Token{"Ghelix", "Lhelix", "Kcoil"}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("token %d = %q, want %q", i, toks[i], want[i])
		}
	}
}

func TestSplitTokenCountEqualsSequenceLength(t *testing.T) {
	rec := peptide.Record{ID: "p2", Seq: "ACDEFGHIKL", Structure: "HHHEEECCCT"}
	toks, err := Split(rec)
	if err != nil || len(toks) != len(rec.Seq) {
		t.Fatalf("got %d tokens for %d residues (%v)", len(toks), len(rec.Seq), err)
	}
	// Re-tokenizing gives the same result.
	again, err := Split(rec)
	if err != nil {
		t.Fatal(err)
	}
	for i := range toks {
		if toks[i] != again[i] {
			t.Fatalf("tokenization not deterministic at %d: %q vs %q", i, toks[i], again[i])
		}
	}
}

func TestSplitLengthMismatchNoPartialResult(t *testing.T) {
	toks, err := Split(peptide.Record{ID: "p3", Seq: "ACDEF", Structure: "HHHC"})
	var lm *LengthMismatchError
	if !errors.As(err, &lm) {
		t.Fatalf("want LengthMismatchError, got %v", err)
	}
	if lm.ID != "p3" || lm.SeqLen != 5 || lm.StructLen != 4 {
		t.Fatalf("error fields: %+v", lm)
	}
	if toks != nil {
		t.Fatalf("partial token list returned: %v", toks)
	}
}

func TestSplitDSSPReduction(t *testing.T) {
	toks, err := Split(peptide.Record{ID: "p4", Seq: "AAAAAAAAA", Structure: "HGIEBTSC-"})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []Class{Helix, Helix, Helix, Sheet, Sheet, Coil, Coil, Coil, Coil}
	for i, cl := range want {
		if toks[i] != New('A', cl) {
			t.Fatalf("code %c mapped to %q, want %q", "HGIEBTSC-"[i], toks[i], New('A', cl))
		}
	}
}

func TestSplitUnknownStructureCode(t *testing.T) {
	_, err := Split(peptide.Record{ID: "p5", Seq: "GLK", Structure: "HQC"})
	var uc *UnknownStructureCodeError
	if !errors.As(err, &uc) {
		t.Fatalf("want UnknownStructureCodeError, got %v", err)
	}
	if uc.ID != "p5" || uc.Code != 'Q' || uc.Pos != 2 {
		t.Fatalf("error fields: %+v", uc)
	}
}

func TestStrictHECRejectsDSSPExtras(t *testing.T) {
	tk := Tokenizer{StrictHEC: true}
	if _, err := tk.Split(peptide.Record{ID: "p6", Seq: "AA", Structure: "HG"}); err == nil {
		t.Fatal("strict tokenizer accepted G")
	}
	toks, err := tk.Split(peptide.Record{ID: "p7", Seq: "AAA", Structure: "HEC"})
	if err != nil || len(toks) != 3 {
		t.Fatalf("strict tokenizer on HEC: %v %v", toks, err)
	}
}

func TestSentence(t *testing.T) {
	got := Sentence([]Token{"Ghelix", "Lhelix", "Kcoil"})
	if got != "Ghelix Lhelix Kcoil" {
		t.Fatalf("Sentence = %q", got)
	}
	if Sentence(nil) != "" {
		t.Fatal("Sentence(nil) should be empty")
	}
}

func TestWindowsTrimsNeighbors(t *testing.T) {
	toks := []Token{"A", "B", "C", "D", "E"}
	ws := Windows(toks, 2)
	if len(ws) != 5 {
		t.Fatalf("got %d windows, want 5", len(ws))
	}
	mid := ws[2]
	if mid.Word != "C" || len(mid.Left) != 2 || len(mid.Right) != 2 {
		t.Fatalf("middle window = %+v", mid)
	}
	if mid.Left[0] != "A" || mid.Left[1] != "B" || mid.Right[0] != "D" || mid.Right[1] != "E" {
		t.Fatalf("middle window context = %+v", mid)
	}
	last := ws[4]
	if last.Word != "E" || len(last.Right) != 0 || len(last.Left) != 2 || last.Left[0] != "C" {
		t.Fatalf("last window = %+v", last)
	}
}

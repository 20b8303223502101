// core/embed/vectors_test.go
package embed

import (
	"math"
	"testing"

	"github.com/unixpickle/anyvec/anyvec32"
)

func testVectors(t *testing.T) *Vectors {
	t.Helper()
	tbl, err := New(map[string][]float32{
		"Acoil":  {1, 0},
		"Bsheet": {0.9, 0.1},
		"Chelix": {0, 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return &Vectors{Table: tbl, Creator: anyvec32.CurrentCreator()}
}

func TestLookupRanksByCosine(t *testing.T) {
	v := testVectors(t)
	ids, sims := v.Lookup(anyvec32.MakeVectorData([]float32{1, 0}), 2)
	if len(ids) != 2 || len(sims) != 2 {
		t.Fatalf("got %d ids, %d sims", len(ids), len(sims))
	}
	if v.Token(ids[0]) != "Acoil" || v.Token(ids[1]) != "Bsheet" {
		t.Fatalf("nearest = %q, %q", v.Token(ids[0]), v.Token(ids[1]))
	}
	if s := float64(sims[0].(float32)); math.Abs(s-1) > 1e-5 {
		t.Fatalf("self-similarity = %v, want 1", s)
	}
}

func TestLookupMoreThanVocab(t *testing.T) {
	v := testVectors(t)
	ids, _ := v.Lookup(anyvec32.MakeVectorData([]float32{0, 1}), 10)
	if len(ids) != v.Table.Len() {
		t.Fatalf("got %d ids, want %d", len(ids), v.Table.Len())
	}
}

func TestEmbedKnownAndUnknown(t *testing.T) {
	v := testVectors(t)
	known := v.Embed("Chelix").Data().([]float32)
	if known[0] != 0 || known[1] != 1 {
		t.Fatalf("Embed(Chelix) = %v", known)
	}
	unknown := v.Embed("Zsheet").Data().([]float32)
	if unknown[0] != 0 || unknown[1] != 0 {
		t.Fatalf("Embed of unknown token = %v, want zero vector", unknown)
	}
}

func TestCosineZeroNorm(t *testing.T) {
	if c := Cosine([]float32{0, 0}, []float32{1, 2}); c != 0 {
		t.Fatalf("Cosine with zero vector = %v", c)
	}
	if c := Cosine([]float32{1, 2}, []float32{1, 2}); math.Abs(c-1) > 1e-9 {
		t.Fatalf("self Cosine = %v", c)
	}
}

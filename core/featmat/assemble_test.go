// core/featmat/assemble_test.go
package featmat

import (
	"errors"
	"testing"

	"pepvec-core/embed"
	"pepvec-core/token"
)

func testTable(t *testing.T) *embed.Table {
	t.Helper()
	tbl, err := embed.New(map[string][]float32{
		"Ghelix": {0.5, -1},
		"Lhelix": {0.25, 0.75},
		"Kcoil":  {-0.5, 0.125},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestAssembleZeroPadding(t *testing.T) {
	// The worked example: "GLK"/"HHC" at MaxLen=5, D=2.
	a := &Assembler{Table: testTable(t), MaxLen: 5}
	m, err := a.Assemble("p1", []token.Token{"Ghelix", "Lhelix", "Kcoil"})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if m.Len() != 3 || m.MaxLen() != 5 || m.Dim() != 2 {
		t.Fatalf("shape: Len=%d MaxLen=%d Dim=%d", m.Len(), m.MaxLen(), m.Dim())
	}
	want := [][]float32{{0.5, -1}, {0.25, 0.75}, {-0.5, 0.125}}
	for i, row := range want {
		for j, v := range row {
			if m.At(i, j) != v {
				t.Fatalf("At(%d,%d) = %v, want %v", i, j, m.At(i, j), v)
			}
		}
	}
	for i := 3; i < 5; i++ {
		for j := 0; j < 2; j++ {
			if m.At(i, j) != 0 {
				t.Fatalf("padding At(%d,%d) = %v, want 0", i, j, m.At(i, j))
			}
		}
		if m.Row(i) != nil {
			t.Fatalf("Row(%d) should be nil for padding", i)
		}
	}
}

func TestAssembleDeterministic(t *testing.T) {
	a := &Assembler{Table: testTable(t), MaxLen: 4}
	toks := []token.Token{"Kcoil", "Ghelix"}
	m1, err1 := a.Assemble("p1", toks)
	m2, err2 := a.Assemble("p1", toks)
	if err1 != nil || err2 != nil {
		t.Fatalf("Assemble: %v %v", err1, err2)
	}
	f1, f2 := m1.Flat(), m2.Flat()
	for i := range f1 {
		if f1[i] != f2[i] {
			t.Fatalf("repeated assembly differs at %d: %v vs %v", i, f1[i], f2[i])
		}
	}
}

func TestAssembleUnknownToken(t *testing.T) {
	a := &Assembler{Table: testTable(t), MaxLen: 4}
	_, err := a.Assemble("p2", []token.Token{"Ghelix", "Zsheet"})
	var ut *UnknownTokenError
	if !errors.As(err, &ut) {
		t.Fatalf("want UnknownTokenError, got %v", err)
	}
	if ut.ID != "p2" || ut.Token != "Zsheet" || ut.Pos != 2 {
		t.Fatalf("error fields: %+v", ut)
	}
}

func TestAssembleTooLong(t *testing.T) {
	a := &Assembler{Table: testTable(t), MaxLen: 2}
	_, err := a.Assemble("p3", []token.Token{"Ghelix", "Lhelix", "Kcoil"})
	var tl *TooLongError
	if !errors.As(err, &tl) {
		t.Fatalf("want TooLongError, got %v", err)
	}
	if tl.Len != 3 || tl.MaxLen != 2 {
		t.Fatalf("error fields: %+v", tl)
	}
}

func TestDenseMatchesSparse(t *testing.T) {
	a := &Assembler{Table: testTable(t), MaxLen: 4}
	m, err := a.Assemble("p4", []token.Token{"Lhelix"})
	if err != nil {
		t.Fatal(err)
	}
	d := m.Dense()
	r, c := d.Dims()
	if r != 4 || c != 2 {
		t.Fatalf("Dense dims = %dx%d", r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if float32(d.At(i, j)) != m.At(i, j) {
				t.Fatalf("Dense(%d,%d)=%v sparse=%v", i, j, d.At(i, j), m.At(i, j))
			}
		}
	}
}

func TestFlatLayout(t *testing.T) {
	a := &Assembler{Table: testTable(t), MaxLen: 3}
	m, err := a.Assemble("p5", []token.Token{"Ghelix", "Kcoil"})
	if err != nil {
		t.Fatal(err)
	}
	flat := m.Flat()
	if len(flat) != 3*2 {
		t.Fatalf("Flat len = %d, want 6", len(flat))
	}
	want := []float32{0.5, -1, -0.5, 0.125, 0, 0}
	for i, v := range want {
		if flat[i] != v {
			t.Fatalf("Flat[%d] = %v, want %v", i, flat[i], v)
		}
	}
}

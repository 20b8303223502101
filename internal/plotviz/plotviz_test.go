package plotviz

import (
	"bytes"
	"strings"
	"testing"

	"pepvec-core/embed"
)

func testTable(t *testing.T) *embed.Table {
	t.Helper()
	tbl, err := embed.New(map[string][]float32{
		"Ghelix": {1, 0, 0},
		"Lhelix": {0.9, 0.1, 0},
		"Ksheet": {0, 1, 0},
		"Acoil":  {0, 0, 1},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tbl
}

func TestPCAScatterWritesSVG(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := PCAScatter(testTable(t), buf); err != nil {
		t.Fatalf("PCAScatter: %v", err)
	}
	svg := buf.String()
	if !strings.Contains(svg, "<svg") {
		t.Fatalf("not an SVG document: %.80s", svg)
	}
	for _, want := range []string{"PC1", "PC2", "Ghelix", "Acoil"} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG is missing %q", want)
		}
	}
}

func TestPCAScatterRejectsTinyTables(t *testing.T) {
	one, err := embed.New(map[string][]float32{"Ghelix": {1, 0}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := PCAScatter(one, &bytes.Buffer{}); err == nil {
		t.Fatal("one token cannot be projected")
	}

	flat, err := embed.New(map[string][]float32{"Ghelix": {1}, "Acoil": {2}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := PCAScatter(flat, &bytes.Buffer{}); err == nil {
		t.Fatal("one dimension cannot be projected")
	}
}

func TestSimilarityHeatmapWritesPNG(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := SimilarityHeatmap(testTable(t), buf); err != nil {
		t.Fatalf("SimilarityHeatmap: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("not a PNG: % x", buf.Bytes()[:8])
	}
}

func TestSimGridIsSymmetric(t *testing.T) {
	g := simGrid{testTable(t)}
	c, r := g.Dims()
	if c != 4 || r != 4 {
		t.Fatalf("dims %dx%d", c, r)
	}
	for i := 0; i < c; i++ {
		if got := g.Z(i, i); got < 0.999 {
			t.Errorf("self similarity at %d = %v", i, got)
		}
		for j := 0; j < r; j++ {
			if g.Z(i, j) != g.Z(j, i) {
				t.Errorf("asymmetry at (%d,%d)", i, j)
			}
		}
	}
}

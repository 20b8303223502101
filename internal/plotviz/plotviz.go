// internal/plotviz/plotviz.go

// Package plotviz renders embedding-table diagnostics: a PCA scatter of
// the token vectors and a token-by-token cosine similarity heat map.
package plotviz

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"pepvec-core/embed"
	"pepvec-core/token"
)

var classColors = map[token.Class]color.RGBA{
	token.Helix: {R: 220, G: 70, B: 70, A: 255},
	token.Sheet: {R: 70, G: 110, B: 220, A: 255},
	token.Coil:  {R: 120, G: 120, B: 120, A: 255},
}

// PCAScatter projects every token vector onto the first two principal
// components and writes an SVG scatter, one color per structure class,
// each point labeled with its token.
func PCAScatter(tbl *embed.Table, out io.Writer) error {
	n, d := tbl.Len(), tbl.Dim()
	if n < 2 || d < 2 {
		return fmt.Errorf("need at least 2 tokens and 2 dimensions, have %dx%d", n, d)
	}

	data := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j, x := range tbl.VectorAt(i) {
			data.Set(i, j, float64(x))
		}
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(data, nil); !ok {
		return errors.New("principal components did not converge")
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	var proj mat.Dense
	proj.Mul(data, vecs.Slice(0, d, 0, 2))

	p := plot.New()
	p.Title.Text = "Token embeddings (PCA)"
	p.X.Label.Text = "PC1"
	p.Y.Label.Text = "PC2"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	byClass := map[token.Class]plotter.XYs{}
	var other plotter.XYs
	var labels plotter.XYLabels
	for i, tok := range tbl.Tokens() {
		xy := plotter.XY{X: proj.At(i, 0), Y: proj.At(i, 1)}
		cl := token.Token(tok).Class()
		if _, known := classColors[cl]; known {
			byClass[cl] = append(byClass[cl], xy)
		} else {
			other = append(other, xy)
		}
		labels.XYs = append(labels.XYs, xy)
		labels.Labels = append(labels.Labels, tok)
	}

	for _, cl := range []token.Class{token.Helix, token.Sheet, token.Coil} {
		pts := byClass[cl]
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = classColors[cl]
		sc.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(sc)
		p.Legend.Add(string(cl), sc)
	}
	if len(other) > 0 {
		sc, err := plotter.NewScatter(other)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = color.RGBA{R: 230, G: 160, A: 255}
		sc.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(sc)
		p.Legend.Add("other", sc)
	}

	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(lbl)

	wr, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "svg")
	if err != nil {
		return err
	}
	_, err = wr.WriteTo(out)
	return err
}

// SimilarityHeatmap writes a PNG heat map of pairwise cosine similarity
// over the whole vocabulary, axes in Table.Tokens() order.
func SimilarityHeatmap(tbl *embed.Table, out io.Writer) error {
	if tbl.Len() == 0 {
		return errors.New("empty embedding table")
	}

	hm := plotter.NewHeatMap(simGrid{tbl}, moreland.SmoothBlueRed().Palette(255))
	hm.Min, hm.Max = -1, 1

	p := plot.New()
	p.Title.Text = "Token cosine similarity"
	names := tbl.Tokens()
	p.NominalX(names...)
	p.NominalY(names...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.Add(hm)

	wr, err := p.WriterTo(8*vg.Inch, 8*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wr.WriteTo(out)
	return err
}

// simGrid adapts the embedding table to plotter's heat-map interface.
type simGrid struct {
	tbl *embed.Table
}

func (g simGrid) Dims() (c, r int) {
	n := g.tbl.Len()
	return n, n
}

func (g simGrid) Z(c, r int) float64 {
	return embed.Cosine(g.tbl.VectorAt(c), g.tbl.VectorAt(r))
}

func (g simGrid) X(c int) float64 { return float64(c) }

func (g simGrid) Y(r int) float64 { return float64(r) }

// core/embed/vectors.go
package embed

import (
	"fmt"
	"math"
	"sort"

	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/wordembed"
)

// Vectors adapts a Table to the wordembed.Embedding interface so the
// anynet stack can consume the trained table directly.
type Vectors struct {
	Table   *Table
	Creator anyvec.Creator
}

var _ wordembed.Embedding = (*Vectors)(nil)

// Dim returns the embedding dimension.
func (v *Vectors) Dim() int { return v.Table.Dim() }

// Embed returns the embedding for token, or the zero vector when the
// token is not in the vocabulary.
func (v *Vectors) Embed(token string) anyvec.Vector {
	if vec, ok := v.Table.Vector(token); ok {
		return v.vector(vec)
	}
	return v.Creator.MakeVector(v.Table.Dim())
}

// EmbedID returns the embedding for the token ID.
func (v *Vectors) EmbedID(id int) anyvec.Vector {
	return v.vector(v.Table.VectorAt(id))
}

// Lookup finds the n token IDs whose embeddings have the highest cosine
// similarity to vec, most similar first.
func (v *Vectors) Lookup(vec anyvec.Vector, n int) ([]int, []anyvec.Numeric) {
	query := vectorData(vec)
	type scored struct {
		id  int
		sim float64
	}
	scores := make([]scored, v.Table.Len())
	for id := range scores {
		scores[id] = scored{id: id, sim: cosine(query, v.Table.VectorAt(id))}
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].sim != scores[j].sim {
			return scores[i].sim > scores[j].sim
		}
		return scores[i].id < scores[j].id
	})
	if n > len(scores) {
		n = len(scores)
	}
	ids := make([]int, n)
	sims := make([]anyvec.Numeric, n)
	for i := 0; i < n; i++ {
		ids[i] = scores[i].id
		sims[i] = v.Creator.MakeNumeric(scores[i].sim)
	}
	return ids, sims
}

// Token looks up the token for the token ID.
func (v *Vectors) Token(id int) string { return v.Table.Token(id) }

func (v *Vectors) vector(vec []float32) anyvec.Vector {
	f := make([]float64, len(vec))
	for i, x := range vec {
		f[i] = float64(x)
	}
	return v.Creator.MakeVectorData(v.Creator.MakeNumericList(f))
}

func vectorData(v anyvec.Vector) []float64 {
	switch d := v.Data().(type) {
	case []float64:
		return d
	case []float32:
		out := make([]float64, len(d))
		for i, x := range d {
			out[i] = float64(x)
		}
		return out
	default:
		panic(fmt.Sprintf("unsupported numeric type: %T", d))
	}
}

// Cosine reports the cosine similarity between a query and a table row.
// Zero-norm vectors compare as 0 rather than NaN.
func Cosine(a, b []float32) float64 {
	q := make([]float64, len(a))
	for i, x := range a {
		q[i] = float64(x)
	}
	return cosine(q, b)
}

func cosine(q []float64, w []float32) float64 {
	if len(q) != len(w) {
		return 0
	}
	var dot, qn, wn float64
	for i, x := range q {
		y := float64(w[i])
		dot += x * y
		qn += x * x
		wn += y * y
	}
	if qn == 0 || wn == 0 {
		return 0
	}
	return dot / (math.Sqrt(qn) * math.Sqrt(wn))
}

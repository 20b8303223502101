// core/featmat/matrix.go
package featmat

import (
	"fmt"

	"github.com/unixpickle/anyvec"
	"gonum.org/v1/gonum/mat"
)

// DefaultMaxLen is the longest peptide in the source dataset. Every matrix
// in one dataset shares a single MaxLen so the classifier sees a fixed
// input shape.
const DefaultMaxLen = 133

// Matrix is one peptide's embedding matrix in row-sparse form: only the
// populated rows are stored, rows [Len, MaxLen) are implicit zeros. The
// stored rows alias the embedding table's vectors, so a Matrix costs one
// slice header per token until it is densified at a consumer boundary.
type Matrix struct {
	id     string
	rows   [][]float32
	maxLen int
	dim    int
}

// FromRows rebuilds a Matrix from raw rows, for readers that load a dataset
// back from disk. Every row must have dim columns and fit within maxLen.
func FromRows(id string, rows [][]float32, maxLen, dim int) (*Matrix, error) {
	if len(rows) > maxLen {
		return nil, &TooLongError{ID: id, Len: len(rows), MaxLen: maxLen}
	}
	for i, r := range rows {
		if len(r) != dim {
			return nil, fmt.Errorf("record %s: row %d has %d columns, want %d", id, i, len(r), dim)
		}
	}
	return &Matrix{id: id, rows: rows, maxLen: maxLen, dim: dim}, nil
}

// ID returns the peptide's record ID.
func (m *Matrix) ID() string { return m.id }

// Len returns the number of populated rows (the peptide's token count).
func (m *Matrix) Len() int { return len(m.rows) }

// MaxLen returns the fixed row count of the dense form.
func (m *Matrix) MaxLen() int { return m.maxLen }

// Dim returns the embedding dimension.
func (m *Matrix) Dim() int { return m.dim }

// At returns the value at row i, column j; padding rows read as zero.
func (m *Matrix) At(i, j int) float32 {
	if i >= len(m.rows) {
		return 0
	}
	return m.rows[i][j]
}

// Row returns the populated row i, or nil for padding rows. The slice is
// shared with the embedding table; callers must not modify it.
func (m *Matrix) Row(i int) []float32 {
	if i >= len(m.rows) {
		return nil
	}
	return m.rows[i]
}

// Dense materializes the full MaxLen-by-Dim matrix with exact zero
// padding rows. The result is freshly allocated on every call.
func (m *Matrix) Dense() *mat.Dense {
	d := mat.NewDense(m.maxLen, m.dim, nil)
	for i, row := range m.rows {
		for j, v := range row {
			d.Set(i, j, float64(v))
		}
	}
	return d
}

// Flat returns the dense matrix packed row-major into a fresh
// MaxLen*Dim slice, padding included.
func (m *Matrix) Flat() []float32 {
	out := make([]float32, m.maxLen*m.dim)
	for i, row := range m.rows {
		copy(out[i*m.dim:], row)
	}
	return out
}

// Vector packs the dense matrix into an anyvec vector for the trainer.
func (m *Matrix) Vector(c anyvec.Creator) anyvec.Vector {
	flat := m.Flat()
	f := make([]float64, len(flat))
	for i, x := range flat {
		f[i] = float64(x)
	}
	return c.MakeVectorData(c.MakeNumericList(f))
}

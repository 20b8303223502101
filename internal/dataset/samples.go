// internal/dataset/samples.go
package dataset

import (
	"crypto/md5"

	"github.com/unixpickle/anynet/anyff"
	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec"
)

// Samples adapts dataset rows to the trainer's sample list. Inputs are the
// flattened dense matrices, outputs are single-component label vectors.
type Samples struct {
	C    anyvec.Creator
	Rows []Row
}

var (
	_ anyff.SampleList = (*Samples)(nil)
	_ anysgd.Hasher    = (*Samples)(nil)
)

// NewSamples wraps the given rows for training.
func NewSamples(c anyvec.Creator, rows []Row) *Samples {
	return &Samples{C: c, Rows: rows}
}

// Len returns the number of samples.
func (s *Samples) Len() int { return len(s.Rows) }

// Swap swaps two samples.
func (s *Samples) Swap(i, j int) {
	s.Rows[i], s.Rows[j] = s.Rows[j], s.Rows[i]
}

// Slice copies a sub-range of the list.
func (s *Samples) Slice(i, j int) anysgd.SampleList {
	return &Samples{C: s.C, Rows: append([]Row{}, s.Rows[i:j]...)}
}

// GetSample materializes the i-th feed-forward sample.
func (s *Samples) GetSample(i int) (*anyff.Sample, error) {
	r := s.Rows[i]
	out := s.C.MakeVectorData(s.C.MakeNumericList([]float64{float64(r.Label)}))
	return &anyff.Sample{Input: r.Matrix.Vector(s.C), Output: out}, nil
}

// Hash hashes the i-th sample's record ID, so anysgd.HashSplit assigns a
// stable partition per record no matter how the dataset grows.
func (s *Samples) Hash(i int) []byte {
	sum := md5.Sum([]byte(s.Rows[i].ID))
	return sum[:]
}

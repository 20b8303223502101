// internal/dataset/dataset.go
package dataset

import (
	"pepvec-core/featmat"
	"pepvec-core/token"
)

// Split-set labels attached to assembled rows.
const (
	SetTrain = "train"
	SetTest  = "test"
)

// Row is one assembled record: the feature matrix zipped positionally with
// its label and split assignment. Tokens are carried for human-facing
// renderers only; serialized forms drop them.
type Row struct {
	ID     string
	Label  int // 1 hemolytic, 0 non-hemolytic
	Set    string
	Tokens []token.Token
	Matrix *featmat.Matrix
}

// Set is an assembled dataset. All matrices share MaxLen and Dim, so the
// classifier sees one fixed input shape.
type Set struct {
	MaxLen int
	Dim    int
	Rows   []Row
}

// Len returns the number of rows.
func (s *Set) Len() int { return len(s.Rows) }

// Subset returns the rows assigned to the named split, in dataset order.
func (s *Set) Subset(name string) []Row {
	var out []Row
	for _, r := range s.Rows {
		if r.Set == name {
			out = append(out, r)
		}
	}
	return out
}

// Train returns the training rows.
func (s *Set) Train() []Row { return s.Subset(SetTrain) }

// Test returns the held-out rows.
func (s *Set) Test() []Row { return s.Subset(SetTest) }

// Assign stamps each row with its split set given train/test index lists.
func (s *Set) Assign(train, test []int) {
	for _, i := range train {
		s.Rows[i].Set = SetTrain
	}
	for _, i := range test {
		s.Rows[i].Set = SetTest
	}
}

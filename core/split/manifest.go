// core/split/manifest.go
package split

import "fmt"

// A Manifest records one reproducible split so independent runs (feature
// assembly, training, evaluation) agree on which records are train and
// which are test.
type Manifest struct {
	Mode  string  `json:"mode"` // "perm" or "hash"
	Seed  int64   `json:"seed,omitempty"`
	Frac  float64 `json:"train_frac"`
	Train []int   `json:"train"`
	Test  []int   `json:"test"`
}

// Validate checks that the manifest partitions [0,n) exactly: no overlap,
// no omission, no out-of-range index.
func (m *Manifest) Validate(n int) error {
	if m.Mode != "perm" && m.Mode != "hash" {
		return fmt.Errorf("unknown split mode %q", m.Mode)
	}
	if len(m.Train)+len(m.Test) != n {
		return fmt.Errorf("split covers %d indices, dataset has %d", len(m.Train)+len(m.Test), n)
	}
	seen := make([]bool, n)
	for _, set := range [][]int{m.Train, m.Test} {
		for _, i := range set {
			if i < 0 || i >= n {
				return fmt.Errorf("split index %d outside [0,%d)", i, n)
			}
			if seen[i] {
				return fmt.Errorf("split index %d appears twice", i)
			}
			seen[i] = true
		}
	}
	return nil
}

// core/split/split.go
package split

import (
	"fmt"
	"math/rand"
)

// Indices partitions [0,n) into train and test sets: a seeded permutation
// with the first floor(frac*n) indices as train, the rest as test. The
// same n, frac, and seed always produce the same split, so performance
// numbers stay comparable across re-runs.
func Indices(n int, frac float64, seed int64) (train, test []int, err error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("negative record count %d", n)
	}
	if frac < 0 || frac > 1 {
		return nil, nil, fmt.Errorf("train fraction %v outside [0,1]", frac)
	}
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	k := int(frac * float64(n))
	return perm[:k:k], perm[k:], nil
}

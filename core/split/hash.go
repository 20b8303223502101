// core/split/hash.go
package split

import (
	"fmt"
	"hash/fnv"
)

// HashIndices assigns each ID to train or test by comparing its hash
// against a cutoff derived from frac. Unlike a permutation split,
// membership depends only on the ID, so it stays stable when records are
// appended to the dataset. Index order within each side follows the input.
func HashIndices(ids []string, frac float64) (train, test []int, err error) {
	if frac < 0 || frac > 1 {
		return nil, nil, fmt.Errorf("train fraction %v outside [0,1]", frac)
	}
	if frac == 0 {
		return nil, all(len(ids)), nil
	} else if frac == 1 {
		return all(len(ids)), nil, nil
	}
	cutoff := hashCutoff(frac)
	for i, id := range ids {
		if compareHashes(idHash(id), cutoff) < 0 {
			train = append(train, i)
		} else {
			test = append(test, i)
		}
	}
	return train, test, nil
}

func all(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func idHash(id string) []byte {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return h.Sum(nil)
}

func hashCutoff(ratio float64) []byte {
	res := make([]byte, 8)
	for i := range res {
		ratio *= 256
		value := int(ratio)
		ratio -= float64(value)
		if value == 256 {
			value = 255
		}
		res[i] = byte(value)
	}
	return res
}

func compareHashes(h1, h2 []byte) int {
	max := len(h1)
	if len(h2) > max {
		max = len(h2)
	}
	for i := 0; i < max; i++ {
		var h1Val, h2Val byte
		if i < len(h1) {
			h1Val = h1[i]
		}
		if i < len(h2) {
			h2Val = h2[i]
		}
		if h1Val < h2Val {
			return -1
		} else if h1Val > h2Val {
			return 1
		}
	}
	return 0
}

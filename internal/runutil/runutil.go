// internal/runutil/runutil.go
package runutil

import (
	"fmt"

	"pepvec-core/split"
)

// ComputeMaxLen returns the effective matrix row count given the CLI value
// and the longest tokenized record observed. requested=0 sizes matrices to
// the input, which earns a warning because the shape then depends on data.
func ComputeMaxLen(requested, observed int) (int, []string) {
	if requested > 0 {
		return requested, nil
	}
	if observed <= 0 {
		return 0, nil
	}
	return observed, []string{fmt.Sprintf("warning: --max-len 0 sizes matrices to the longest record (%d rows)", observed)}
}

// ComputeSplit applies the CLI split mode. perm takes the first
// floor(frac*n) slots of a seeded permutation; hash derives membership from
// record IDs so rows keep their split when the dataset grows.
func ComputeSplit(mode string, ids []string, frac float64, seed int64) (train, test []int, err error) {
	switch mode {
	case "perm":
		return split.Indices(len(ids), frac, seed)
	case "hash":
		return split.HashIndices(ids, frac)
	default:
		return nil, nil, fmt.Errorf("invalid split mode %q", mode)
	}
}

// ComputeRadius returns the effective context window radius for sentence
// windows. Zero or negative requests fall back to the default.
func ComputeRadius(requested int) int {
	if requested > 0 {
		return requested
	}
	return 5
}

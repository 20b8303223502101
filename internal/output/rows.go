// internal/output/rows.go
package output

import (
	"fmt"

	"pepvec/internal/dataset"
)

// FormatRowTSV returns the summary columns for one record (no trailing
// newline). Unsplit rows leave the set column empty.
func FormatRowTSV(r dataset.Row) string {
	return fmt.Sprintf("%s\t%d\t%s\t%d", r.ID, r.Label, r.Set, r.Matrix.Len())
}

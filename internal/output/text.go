// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"pepvec/internal/dataset"
)

// WriteText prints one summary line per record.
func WriteText(w io.Writer, rows []dataset.Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"pepvec-core/peptide"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// WarnMergeStats reports rows that did not survive the table join. The
// join itself already failed loudly on real conflicts; these are the
// benign leftovers a user still wants to know about.
func WarnMergeStats(dst io.Writer, quiet bool, s peptide.MergeStats) {
	if s.SeqOnly > 0 {
		Warnf(dst, quiet, "%d sequence row(s) had no structure match", s.SeqOnly)
	}
	if s.StructOnly > 0 {
		Warnf(dst, quiet, "%d structure row(s) had no sequence match", s.StructOnly)
	}
	if s.Collapsed > 0 {
		Warnf(dst, quiet, "%d duplicate row(s) collapsed", s.Collapsed)
	}
}

// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is the ParseArgs sentinel for --examples: the
// tool prints its quickstart and exits 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples frames a tool's quickstart body with the shared header
// and help tip.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

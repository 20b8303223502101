// internal/clibase/exit.go
package clibase

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"
)

// flushBrokenPipe mirrors the writers-package recognizer without pulling
// the writer stack into CLI packages.
func flushBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// FlushExit flushes buffered output and returns code. A broken pipe turns
// into success; any other flush failure is a runtime error.
func FlushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); flushBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

// UsageExit prints the flag set's usage to outw, then exits with code via
// FlushExit.
func UsageExit(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(outw)
	fs.Usage()
	return FlushExit(outw, stderr, code)
}

// internal/appcore/core.go

// Package appcore owns the run skeleton shared by the pepvec tools:
// start the output writer, pump produced values into it, then map
// writer, cancellation, and per-record failures onto exit codes.
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"pepvec-core/errlist"

	"pepvec/internal/writers"
)

type Options struct {
	Threads int

	Quiet             bool
	NoRecordsExitCode int
}

// ProduceFunc feeds values to send in output order. It returns how many
// values it sent, the per-record failures it collected, and a fatal
// error when the whole run must abort.
type ProduceFunc[T any] func(ctx context.Context, send func(T) error) (int, *errlist.List, error)

// WriterFactory opens the writer goroutine for one output format.
type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run wires produce into the writer and turns the outcome into an exit
// code: 0 on success (broken pipe included), 3 on runtime errors, 130
// on cancellation. Per-record failures go to stderr even under --quiet,
// since they change what the output contains; they only affect the exit
// code when nothing survived, which exits with NoRecordsExitCode.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	wf WriterFactory[T],
	produce ProduceFunc[T],
) int {
	outw := bufio.NewWriter(stdout)

	bufSize := 64
	if o.Threads > 0 {
		bufSize = o.Threads * 4
	}
	inCh, writeErr := wf.Start(outw, bufSize)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, fails, perr := produce(ctx, func(x T) error {
		select {
		case inCh <- x:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}

	if fails != nil {
		for _, e := range fails.Errors() {
			fmt.Fprintf(stderr, "WARN: %v\n", e)
		}
	}
	if total == 0 {
		return o.NoRecordsExitCode
	}
	return 0
}

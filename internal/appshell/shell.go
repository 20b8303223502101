// Package appshell owns the process boundary shared by every pepvec binary:
// signal-aware context, argv defaulting, and exit-code normalization.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs an app entry point under a SIGINT/SIGTERM-cancelled context
// and exits the process with the app's code.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, argvOrHelp(), os.Stdout, os.Stderr)
	if code == 0 && ctx.Err() != nil {
		// The app finished in the window between the signal and its next
		// cancellation check; report the interrupt anyway.
		code = 130
	}
	stop()
	os.Exit(code)
}

// argvOrHelp turns a bare invocation into a help request.
func argvOrHelp() []string {
	if len(os.Args) <= 1 {
		return []string{"-h"}
	}
	return os.Args[1:]
}

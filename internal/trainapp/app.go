// internal/trainapp/app.go

// Package trainapp implements pepvec-train: load a packed dataset
// archive, build the convolutional classifier, and run Adam until the
// batch budget is spent or the user interrupts. The model is saved
// either way, so an interrupted run still yields a usable artifact.
package trainapp

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/rip"

	"pepvec/internal/clibase"
	"pepvec/internal/cmdutil"
	"pepvec/internal/dataset"
	"pepvec/internal/model"
	"pepvec/internal/traincli"
	"pepvec/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return run(argv, stdout, stderr, nil)
}

// RunWithStop is Run with an explicit stop channel in place of the
// SIGINT listener; tests use it to avoid touching process signals.
func RunWithStop(argv []string, stdout, stderr io.Writer, stop <-chan struct{}) int {
	return run(argv, stdout, stderr, stop)
}

func run(argv []string, stdout, stderr io.Writer, stop <-chan struct{}) int {
	outw := bufio.NewWriter(stdout)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	fs := traincli.NewFlagSet("pepvec-train")
	fs.SetOutput(io.Discard)

	opts, err := traincli.ParseArgs(fs, argv)
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		traincli.PrintExamples(outw)
		return clibase.FlushExit(outw, stderr, 0)
	case errors.Is(err, flag.ErrHelp):
		return clibase.UsageExit(fs, outw, stderr, 0)
	case err != nil:
		fmt.Fprintln(stderr, err)
		return clibase.UsageExit(fs, outw, stderr, 2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "pepvec-train version %s\n", version.Version)
		return clibase.FlushExit(outw, stderr, 0)
	}

	stored, err := dataset.ReadFile(opts.Dataset)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	set, err := stored.Unpack()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	rows := set.Rows
	if !opts.TrainOnAll {
		if tr := set.Train(); len(tr) > 0 {
			rows = tr
		} else {
			cmdutil.Warnf(stderr, opts.Quiet, "dataset carries no split; training on all %d records", set.Len())
		}
	}
	if len(rows) == 0 {
		fmt.Fprintln(stderr, "no training records in dataset")
		return 1
	}

	markup := ""
	if opts.MarkupFile != "" {
		data, err := os.ReadFile(opts.MarkupFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		markup = string(data)
	}

	creator := anyvec32.CurrentCreator()
	clf, err := model.New(creator, set.MaxLen, set.Dim, markup)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	log.SetOutput(stderr)
	if stop == nil {
		stop = rip.NewRIP().Chan()
	}
	samples := dataset.NewSamples(creator, rows)
	cfg := model.TrainConfig{
		BatchSize: opts.BatchSize,
		Rate:      opts.Rate,
		Iters:     opts.Iters,
		Quiet:     opts.Quiet,
	}
	if err := clf.Train(cfg, samples, stop); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	if err := model.SaveFile(opts.ModelOut, clf); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	fmt.Fprintf(outw, "trained on %d records (%dx%d), saved %s\n",
		len(rows), set.MaxLen, set.Dim, opts.ModelOut)
	return clibase.FlushExit(outw, stderr, 0)
}

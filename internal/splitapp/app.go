// internal/splitapp/app.go

// Package splitapp implements pepvec-split: derive a reproducible
// train/test split from the merged tables and emit it as a manifest, so
// assembly, training, and evaluation runs agree on set membership.
package splitapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pepvec-core/peptide"
	"pepvec-core/split"

	"pepvec/internal/clibase"
	"pepvec/internal/cmdutil"
	"pepvec/internal/dataset"
	"pepvec/internal/jsonutil"
	"pepvec/internal/output"
	"pepvec/internal/runutil"
	"pepvec/internal/splitcli"
	"pepvec/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := splitcli.NewFlagSet("pepvec-split")
	fs.SetOutput(io.Discard)

	opts, err := splitcli.ParseArgs(fs, argv)
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		splitcli.PrintExamples(outw)
		return clibase.FlushExit(outw, stderr, 0)
	case errors.Is(err, flag.ErrHelp):
		return clibase.UsageExit(fs, outw, stderr, 0)
	case err != nil:
		fmt.Fprintln(stderr, err)
		return clibase.UsageExit(fs, outw, stderr, 2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "pepvec-split version %s\n", version.Version)
		return clibase.FlushExit(outw, stderr, 0)
	}

	seqRows, err := peptide.LoadSeqCSV(opts.SeqTable)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	structRows, err := peptide.LoadStructCSV(opts.StructTable)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	recs, stats, err := peptide.Merge(seqRows, structRows)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	cmdutil.WarnMergeStats(stderr, opts.Quiet, stats)
	if len(recs) == 0 {
		fmt.Fprintln(stderr, "no records survive the join")
		return opts.NoRecordsExitCode
	}

	ids := make([]string, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ID
	}
	train, test, err := runutil.ComputeSplit(opts.SplitBy, ids, opts.TrainFrac, opts.Seed)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	m := split.Manifest{Mode: opts.SplitBy, Frac: opts.TrainFrac, Train: train, Test: test}
	if opts.SplitBy == "perm" {
		m.Seed = opts.Seed
	}
	if err := m.Validate(len(recs)); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	switch opts.Output {
	case output.FormatJSON:
		err = jsonutil.EncodePretty(outw, m)
	case output.FormatTSV:
		err = writeRows(outw, ids, train, test, opts.Header)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return clibase.FlushExit(outw, stderr, 0)
}

func writeRows(w io.Writer, ids []string, train, test []int, header bool) error {
	setOf := make([]string, len(ids))
	for _, i := range train {
		setOf[i] = dataset.SetTrain
	}
	for _, i := range test {
		setOf[i] = dataset.SetTest
	}
	if header {
		if _, err := fmt.Fprintln(w, "id\tset"); err != nil {
			return err
		}
	}
	for i, id := range ids {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", id, setOf[i]); err != nil {
			return err
		}
	}
	return nil
}

// internal/evalapp/app.go

// Package evalapp implements pepvec-eval: score a trained classifier
// against a packed dataset, per split set and overall.
package evalapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/unixpickle/anyvec/anyvec32"

	"pepvec-core/featmat"

	"pepvec/internal/clibase"
	"pepvec/internal/dataset"
	"pepvec/internal/evalcli"
	"pepvec/internal/evalstats"
	"pepvec/internal/jsonutil"
	"pepvec/internal/model"
	"pepvec/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := evalcli.NewFlagSet("pepvec-eval")
	fs.SetOutput(io.Discard)

	opts, err := evalcli.ParseArgs(fs, argv)
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		evalcli.PrintExamples(outw)
		return clibase.FlushExit(outw, stderr, 0)
	case errors.Is(err, flag.ErrHelp):
		return clibase.UsageExit(fs, outw, stderr, 0)
	case err != nil:
		fmt.Fprintln(stderr, err)
		return clibase.UsageExit(fs, outw, stderr, 2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "pepvec-eval version %s\n", version.Version)
		return clibase.FlushExit(outw, stderr, 0)
	}

	clf, err := model.LoadFile(opts.Model)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
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
	if set.Len() == 0 {
		fmt.Fprintln(stderr, "empty dataset")
		return 1
	}
	if set.MaxLen != clf.MaxLen || set.Dim != clf.Dim {
		fmt.Fprintf(stderr, "dataset shape %dx%d does not match model %dx%d\n",
			set.MaxLen, set.Dim, clf.MaxLen, clf.Dim)
		return 2
	}

	creator := anyvec32.CurrentCreator()
	mats := make([]*featmat.Matrix, set.Len())
	for i, r := range set.Rows {
		mats[i] = r.Matrix
	}
	// Score one batch at a time so a SIGINT lands between network
	// applications instead of after the whole dataset.
	probs := make([]float64, 0, len(mats))
	for start := 0; start < len(mats); start += opts.BatchSize {
		if ctx.Err() != nil {
			return 130
		}
		end := start + opts.BatchSize
		if end > len(mats) {
			end = len(mats)
		}
		ps, err := clf.PredictBatch(creator, mats[start:end], opts.BatchSize)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		probs = append(probs, ps...)
	}

	byName := map[string]*evalstats.Confusion{}
	var names []string
	tally := func(name string, pred, label int) {
		c, ok := byName[name]
		if !ok {
			c = &evalstats.Confusion{}
			byName[name] = c
			names = append(names, name)
		}
		c.Add(pred, label)
	}

	overall := &evalstats.Confusion{}
	for i, r := range set.Rows {
		pred := evalstats.Classify(probs[i], opts.Threshold)
		overall.Add(pred, r.Label)
		if r.Set != "" {
			tally(r.Set, pred, r.Label)
		}
	}

	var reports []evalstats.Report
	for _, name := range []string{dataset.SetTrain, dataset.SetTest} {
		if c, ok := byName[name]; ok {
			reports = append(reports, c.Report(name))
		}
	}
	for _, name := range names {
		if name != dataset.SetTrain && name != dataset.SetTest {
			reports = append(reports, byName[name].Report(name))
		}
	}
	reports = append(reports, overall.Report("all"))

	switch opts.Output {
	case "json":
		err = jsonutil.EncodePretty(outw, reports)
	default:
		if opts.Header {
			_, err = fmt.Fprintln(outw, evalstats.TSVHeader)
		}
		for _, r := range reports {
			if err != nil {
				break
			}
			_, err = fmt.Fprintln(outw, evalstats.FormatReportTSV(r))
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return clibase.FlushExit(outw, stderr, 0)
}

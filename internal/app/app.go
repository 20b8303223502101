// internal/app/app.go

// Package app implements the main pepvec tool: merge the sequence and
// structure tables, tokenize each peptide, look up token embeddings, and
// stream zero-padded feature matrices to the chosen writer.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pepvec-core/embed"
	"pepvec-core/errlist"
	"pepvec-core/featmat"
	"pepvec-core/peptide"
	"pepvec-core/token"

	"pepvec/internal/appcore"
	"pepvec/internal/cli"
	"pepvec/internal/clibase"
	"pepvec/internal/cmdutil"
	"pepvec/internal/dataset"
	"pepvec/internal/pipeline"
	"pepvec/internal/runutil"
	"pepvec/internal/version"
	"pepvec/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("pepvec")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		cli.PrintExamples(outw)
		return clibase.FlushExit(outw, stderr, 0)
	case errors.Is(err, flag.ErrHelp):
		return clibase.UsageExit(fs, outw, stderr, 0)
	case err != nil:
		fmt.Fprintln(stderr, err)
		return clibase.UsageExit(fs, outw, stderr, 2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "pepvec version %s\n", version.Version)
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

	tbl, err := embed.LoadPath(opts.EmbedFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	// Tokenize up front: the effective matrix height and the writer
	// metadata both depend on the longest tokenized record.
	tk := token.Tokenizer{StrictHEC: opts.StrictHEC}
	pipeCfg := pipeline.Config{Threads: opts.Threads}
	toks, tokFails, err := pipeline.ForEachRecord(parent, pipeCfg, recs,
		func(i int, rec peptide.Record) ([]token.Token, error) {
			return tk.Split(rec)
		})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}

	observed := 0
	for _, ts := range toks {
		if len(ts) > observed {
			observed = len(ts)
		}
	}
	maxLen, warns := runutil.ComputeMaxLen(opts.MaxLen, observed)
	for _, w := range warns {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}
	if maxLen == 0 {
		for _, e := range tokFails.Errors() {
			fmt.Fprintf(stderr, "WARN: %v\n", e)
		}
		fmt.Fprintln(stderr, "no tokenizable records in input")
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
	setOf := make([]string, len(recs))
	for _, i := range train {
		setOf[i] = dataset.SetTrain
	}
	for _, i := range test {
		setOf[i] = dataset.SetTest
	}

	meta := writers.Meta{
		MaxLen:    maxLen,
		Dim:       tbl.Dim(),
		TrainFrac: opts.TrainFrac,
		Seed:      opts.Seed,
		SplitBy:   opts.SplitBy,
	}
	wf := appcore.NewRecordWriterFactory(opts.Output, opts.Header, opts.Pretty, meta)
	keepTokens := wf.NeedTokens()

	coreOpts := appcore.Options{
		Threads:           opts.Threads,
		Quiet:             opts.Quiet,
		NoRecordsExitCode: opts.NoRecordsExitCode,
	}

	asm := &featmat.Assembler{Table: tbl, MaxLen: maxLen}
	produce := func(ctx context.Context, send func(dataset.Row) error) (int, *errlist.List, error) {
		mats, asmFails, err := pipeline.ForEachRecord(ctx, pipeCfg, recs,
			func(i int, rec peptide.Record) (*featmat.Matrix, error) {
				if toks[i] == nil {
					return nil, nil // tokenization already failed
				}
				return asm.Assemble(rec.ID, toks[i])
			})
		if err != nil {
			return 0, nil, err
		}

		fails := &errlist.List{}
		for _, e := range tokFails.Errors() {
			fails.Add(e)
		}
		for _, e := range asmFails.Errors() {
			fails.Add(e)
		}

		total := 0
		for i, rec := range recs {
			if mats[i] == nil {
				continue // failure already collected
			}
			row := dataset.Row{
				ID:     rec.ID,
				Label:  boolLabel(rec.Hemolytic),
				Set:    setOf[i],
				Matrix: mats[i],
			}
			if keepTokens {
				row.Tokens = toks[i]
			}
			if err := send(row); err != nil {
				return total, fails, err
			}
			total++
		}
		return total, fails, nil
	}

	return appcore.Run[dataset.Row](parent, stdout, stderr, coreOpts, wf, produce)
}

func boolLabel(hemolytic bool) int {
	if hemolytic {
		return 1
	}
	return 0
}

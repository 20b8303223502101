// internal/sentencesapp/app.go

// Package sentencesapp implements pepvec-sentences: tokenize merged
// peptides and emit the sentence corpus (or skip-gram context windows)
// consumed by the external embedding trainer.
package sentencesapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/unixpickle/wordembed/word2vec"

	"pepvec-core/errlist"
	"pepvec-core/fasta"
	"pepvec-core/peptide"
	"pepvec-core/token"

	"pepvec/internal/appcore"
	"pepvec/internal/clibase"
	"pepvec/internal/cmdutil"
	"pepvec/internal/pipeline"
	"pepvec/internal/runutil"
	"pepvec/internal/sentencescli"
	"pepvec/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := sentencescli.NewFlagSet("pepvec-sentences")
	fs.SetOutput(io.Discard)

	opts, err := sentencescli.ParseArgs(fs, argv)
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		sentencescli.PrintExamples(outw)
		return clibase.FlushExit(outw, stderr, 0)
	case errors.Is(err, flag.ErrHelp):
		return clibase.UsageExit(fs, outw, stderr, 0)
	case err != nil:
		fmt.Fprintln(stderr, err)
		return clibase.UsageExit(fs, outw, stderr, 2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "pepvec-sentences version %s\n", version.Version)
		return clibase.FlushExit(outw, stderr, 0)
	}

	recs, code := loadRecords(opts, stderr)
	if code != 0 {
		return code
	}

	tk := token.Tokenizer{StrictHEC: opts.StrictHEC}
	pipeCfg := pipeline.Config{Threads: opts.Threads}
	coreOpts := appcore.Options{
		Threads:           opts.Threads,
		Quiet:             opts.Quiet,
		NoRecordsExitCode: opts.NoRecordsExitCode,
	}

	if !opts.Windows {
		produce := func(ctx context.Context, send func(string) error) (int, *errlist.List, error) {
			toks, fails, err := pipeline.ForEachRecord(ctx, pipeCfg, recs,
				func(i int, rec peptide.Record) ([]token.Token, error) {
					return tk.Split(rec)
				})
			if err != nil {
				return 0, nil, err
			}
			total := 0
			for _, ts := range toks {
				if ts == nil {
					continue
				}
				if err := send(token.Sentence(ts)); err != nil {
					return total, fails, err
				}
				total++
			}
			return total, fails, nil
		}
		return appcore.Run[string](parent, stdout, stderr, coreOpts, appcore.SentenceWriterFactory{}, produce)
	}

	radius := runutil.ComputeRadius(opts.Radius)
	seen := runutil.NewLRUSet[string](opts.DedupeCap)
	produce := func(ctx context.Context, send func(*word2vec.Sample) error) (int, *errlist.List, error) {
		toks, fails, err := pipeline.ForEachRecord(ctx, pipeCfg, recs,
			func(i int, rec peptide.Record) ([]token.Token, error) {
				return tk.Split(rec)
			})
		if err != nil {
			return 0, nil, err
		}
		total := 0
		for _, ts := range toks {
			if ts == nil {
				continue
			}
			for _, s := range token.Windows(ts, radius) {
				if seen.Add(windowKey(s)) {
					continue
				}
				if err := send(s); err != nil {
					return total, fails, err
				}
				total++
			}
		}
		return total, fails, nil
	}
	return appcore.Run[*word2vec.Sample](parent, stdout, stderr, coreOpts, appcore.WindowWriterFactory{}, produce)
}

func loadRecords(opts sentencescli.Options, stderr io.Writer) ([]peptide.Record, int) {
	if len(opts.Inputs) == 2 {
		seqs, err := fasta.ReadPath(opts.Inputs[0])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return nil, 2
		}
		structs, err := fasta.ReadPath(opts.Inputs[1])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return nil, 2
		}
		recs, stats, err := fasta.Pair(seqs, structs)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return nil, 3
		}
		cmdutil.WarnMergeStats(stderr, opts.Quiet, stats)
		return recs, 0
	}

	seqRows, err := peptide.LoadSeqCSV(opts.SeqTable)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, 2
	}
	structRows, err := peptide.LoadStructCSV(opts.StructTable)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, 2
	}
	recs, stats, err := peptide.Merge(seqRows, structRows)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, 3
	}
	cmdutil.WarnMergeStats(stderr, opts.Quiet, stats)
	return recs, 0
}

// windowKey flattens one context window into a dedupe key. The unit
// separator cannot occur in tokens, so keys never collide across the
// left/word/right boundaries.
func windowKey(s *word2vec.Sample) string {
	var b strings.Builder
	for _, t := range s.Left {
		b.WriteString(t)
		b.WriteByte(0x1f)
	}
	b.WriteByte(0x1e)
	b.WriteString(s.Word)
	b.WriteByte(0x1e)
	for _, t := range s.Right {
		b.WriteString(t)
		b.WriteByte(0x1f)
	}
	return b.String()
}

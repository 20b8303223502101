// internal/plotapp/app.go

// Package plotapp implements pepvec-plot: render embedding-table
// diagnostics (PCA scatter, similarity heat map) and answer
// nearest-neighbor queries against the trained token vectors.
package plotapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/unixpickle/anyvec/anyvec32"

	"pepvec-core/embed"

	"pepvec/internal/clibase"
	"pepvec/internal/plotcli"
	"pepvec/internal/plotviz"
	"pepvec/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := plotcli.NewFlagSet("pepvec-plot")
	fs.SetOutput(io.Discard)

	opts, err := plotcli.ParseArgs(fs, argv)
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		plotcli.PrintExamples(outw)
		return clibase.FlushExit(outw, stderr, 0)
	case errors.Is(err, flag.ErrHelp):
		return clibase.UsageExit(fs, outw, stderr, 0)
	case err != nil:
		fmt.Fprintln(stderr, err)
		return clibase.UsageExit(fs, outw, stderr, 2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "pepvec-plot version %s\n", version.Version)
		return clibase.FlushExit(outw, stderr, 0)
	}

	tbl, err := embed.LoadPath(opts.EmbedFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Neighbors != "" {
		if code := printNeighbors(outw, stderr, tbl, opts.Neighbors, opts.Top); code != 0 {
			return code
		}
	}
	if opts.PCAOut != "" {
		if err := renderTo(opts.PCAOut, tbl, plotviz.PCAScatter); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		note(outw, opts.Quiet, "wrote %s", opts.PCAOut)
	}
	if opts.HeatOut != "" {
		if err := renderTo(opts.HeatOut, tbl, plotviz.SimilarityHeatmap); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		note(outw, opts.Quiet, "wrote %s", opts.HeatOut)
	}
	return clibase.FlushExit(outw, stderr, 0)
}

func printNeighbors(outw io.Writer, stderr io.Writer, tbl *embed.Table, tok string, top int) int {
	vecs := &embed.Vectors{Table: tbl, Creator: anyvec32.CurrentCreator()}
	query, ok := tbl.Vector(tok)
	if !ok {
		fmt.Fprintf(stderr, "token %q not in embedding table\n", tok)
		return 1
	}
	// top+1 because the query token is its own best match.
	ids, _ := vecs.Lookup(vecs.Embed(tok), top+1)
	fmt.Fprintf(outw, "token\tcosine\n")
	for _, id := range ids {
		name := tbl.Token(id)
		if name == tok {
			continue
		}
		fmt.Fprintf(outw, "%s\t%.4f\n", name, embed.Cosine(query, tbl.VectorAt(id)))
	}
	return 0
}

func renderTo(path string, tbl *embed.Table, render func(*embed.Table, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(tbl, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func note(w io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(w, format+"\n", a...)
}

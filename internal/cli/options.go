// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"pepvec/internal/clibase"
	"pepvec/internal/cliutil"
	"pepvec/internal/output"
)

// Options holds the flags of the main pepvec assembly tool.
type Options struct {
	clibase.Common

	// Pretty adds the per-record token block below each text row.
	Pretty bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s -s peptides.csv -d structures.csv -e tokens.vec [-o jsonl]\n", name)

		fmt.Fprintln(out, "\nOutput formats:")
		fmt.Fprintln(out, "  text   summary rows (add --pretty for per-record token blocks)")
		fmt.Fprintln(out, "  tsv    summary rows, no decoration")
		fmt.Fprintln(out, "  jsonl  one record per line (stable v1 schema)")
		fmt.Fprintln(out, "  json   whole dataset as one document")
		fmt.Fprintln(out, "  bin    packed tensor archive for pepvec-train")

		fmt.Fprintln(out, "\nAssembly:")
		fmt.Fprintf(out, "      --pretty                Per-record token block under each text row [%s]\n", def("pretty"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("pepvec"), nil) }

// PrintExamples prints a tiny quickstart for the main tool.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "pepvec", func(w io.Writer) {
		fmt.Fprintln(w, "Assemble per-peptide embedding matrices from merged tables.")
		fmt.Fprintln(w, "\nExamples:")
		fmt.Fprintln(w, "  pepvec -s peptides.csv -d structures.csv -e tokens.vec")
		fmt.Fprintln(w, "  pepvec -s peptides.csv -d structures.csv -e tokens.vec \\")
		fmt.Fprintln(w, "    --split-by hash --output bin > dataset.bin")
	})
}

// ParseArgs registers and parses all flags for the main tool.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.BoolVar(&o.Pretty, "pretty", false, "per-record token block under each text row [false]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.Partition(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(fs, &c, noHeader, posArgs); err != nil {
		return o, err
	}

	if len(c.Inputs) > 0 {
		return o, fmt.Errorf("unexpected positional argument %q", c.Inputs[0])
	}
	if c.SeqTable == "" || c.StructTable == "" {
		return o, errors.New("--sequences and --structures are required")
	}
	if c.EmbedFile == "" {
		return o, errors.New("--embeddings is required")
	}
	switch c.Output {
	case output.FormatText, output.FormatTSV, output.FormatJSON, output.FormatJSONL, output.FormatBin:
	default:
		return o, fmt.Errorf("invalid --output %q", c.Output)
	}

	o.Common = c
	return o, nil
}

// internal/splitcli/options.go
package splitcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"pepvec/internal/clibase"
	"pepvec/internal/cliutil"
	"pepvec/internal/output"
)

// Options holds the flags of pepvec-split.
type Options struct {
	clibase.Common
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s -s peptides.csv -d structures.csv --seed 42 > split.json\n", name)

		fmt.Fprintln(out, "\nOutput formats:")
		fmt.Fprintln(out, "  json   split manifest (index lists plus mode/seed/fraction); default")
		fmt.Fprintln(out, "  tsv    one id\\tset row per record")
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("pepvec-split"), nil) }

// PrintExamples prints a tiny quickstart for pepvec-split.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "pepvec-split", func(w io.Writer) {
		fmt.Fprintln(w, "Produce a reproducible train/test split manifest.")
		fmt.Fprintln(w, "\nExamples:")
		fmt.Fprintln(w, "  pepvec-split -s peptides.csv -d structures.csv --seed 7 > split.json")
		fmt.Fprintln(w, "  pepvec-split -s peptides.csv -d structures.csv --split-by hash -o tsv")
	})
}

// ParseArgs registers and parses all flags for pepvec-split.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

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
	// The manifest is this tool's primary artifact; the shared flag
	// default "text" means "manifest" here.
	if c.Output == "text" {
		c.Output = output.FormatJSON
	}
	switch c.Output {
	case output.FormatJSON, output.FormatTSV:
	default:
		return o, fmt.Errorf("invalid --output %q", c.Output)
	}

	o.Common = c
	return o, nil
}

// internal/sentencescli/options.go
package sentencescli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"pepvec/internal/clibase"
	"pepvec/internal/cliutil"
)

// Options holds the flags of pepvec-sentences.
type Options struct {
	clibase.Common

	// Windows emits skip-gram context windows (JSONL) instead of
	// one sentence per line.
	Windows bool

	// Radius bounds context tokens kept on each side of a window.
	Radius int

	// DedupeCap sizes the window dedupe set (0 = default).
	DedupeCap int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s -s peptides.csv -d structures.csv > corpus.txt\n", name)
		fmt.Fprintf(out, "  %s seqs.fa structs.fa --windows > windows.jsonl\n", name)

		fmt.Fprintln(out, "\nCorpus:")
		fmt.Fprintf(out, "      --windows               Emit skip-gram context windows as JSONL [%s]\n", def("windows"))
		fmt.Fprintf(out, "      --radius int            Context tokens kept per side (0=default 5) [%s]\n", def("radius"))
		fmt.Fprintf(out, "      --dedupe-cap int        Window dedupe set size (0=default) [%s]\n", def("dedupe-cap"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("pepvec-sentences"), nil) }

// PrintExamples prints a tiny quickstart for pepvec-sentences.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "pepvec-sentences", func(w io.Writer) {
		fmt.Fprintln(w, "Emit the token sentence corpus for the embedding trainer.")
		fmt.Fprintln(w, "\nExamples:")
		fmt.Fprintln(w, "  pepvec-sentences -s peptides.csv -d structures.csv > corpus.txt")
		fmt.Fprintln(w, "  pepvec-sentences seqs.fa structs.fa --windows --radius 3 > windows.jsonl")
	})
}

// ParseArgs registers and parses all flags for pepvec-sentences. Inputs
// are either the two CSV tables or exactly two positional FASTA files
// (sequences then structures).
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.BoolVar(&o.Windows, "windows", false, "emit skip-gram context windows as JSONL [false]")
	fs.IntVar(&o.Radius, "radius", 0, "context tokens kept per side (0=default 5) [0]")
	fs.IntVar(&o.DedupeCap, "dedupe-cap", 0, "window dedupe set size (0=default) [0]")

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

	usingCSV := c.SeqTable != "" || c.StructTable != ""
	usingFasta := len(c.Inputs) > 0
	switch {
	case usingCSV && usingFasta:
		return o, errors.New("--sequences/--structures conflict with positional FASTA inputs")
	case usingCSV && (c.SeqTable == "" || c.StructTable == ""):
		return o, errors.New("--sequences and --structures must be supplied together")
	case usingFasta && len(c.Inputs) != 2:
		return o, errors.New("exactly two FASTA files required: sequences then structures")
	case !usingCSV && !usingFasta:
		return o, errors.New("provide --sequences/--structures or two FASTA files")
	}
	if o.Radius < 0 {
		return o, errors.New("--radius must be ≥ 0")
	}
	if o.DedupeCap < 0 {
		return o, errors.New("--dedupe-cap must be ≥ 0")
	}

	o.Common = c
	return o, nil
}

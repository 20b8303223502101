// internal/evalcli/options.go
package evalcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"pepvec/internal/clibase"
	"pepvec/internal/cliutil"
	"pepvec/internal/version"
)

// Options holds the flags of pepvec-eval.
type Options struct {
	Dataset string
	Model   string

	Threshold float64
	BatchSize int

	Output string
	Header bool

	Quiet   bool
	Version bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – peptide embedding feature toolkit\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --dataset dataset.bin --model clf.bin\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --dataset file          Packed dataset archive from 'pepvec -o bin' [*]")
		fmt.Fprintln(out, "  -m, --model file            Trained classifier from pepvec-train [*]")

		fmt.Fprintln(out, "\nScoring:")
		fmt.Fprintf(out, "      --threshold float       Probability cutoff for a hemolytic call [%s]\n", def("threshold"))
		fmt.Fprintf(out, "      --batch-size int        Matrices densified per network application [%s]\n", def("batch-size"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output format: text | json [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("pepvec-eval"), nil) }

// PrintExamples prints a tiny quickstart for pepvec-eval.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "pepvec-eval", func(w io.Writer) {
		fmt.Fprintln(w, "Score a trained classifier: confusion matrix, accuracy, MCC.")
		fmt.Fprintln(w, "\nExamples:")
		fmt.Fprintln(w, "  pepvec-eval --dataset dataset.bin --model clf.bin")
		fmt.Fprintln(w, "  pepvec-eval -i dataset.bin -m clf.bin --output json")
	})
}

// ParseArgs registers and parses all flags for pepvec-eval.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	fs.StringVar(&o.Dataset, "dataset", "", "packed dataset archive [*]")
	fs.StringVar(&o.Dataset, "i", "", "alias of --dataset")
	fs.StringVar(&o.Model, "model", "", "trained classifier [*]")
	fs.StringVar(&o.Model, "m", "", "alias of --model")

	fs.Float64Var(&o.Threshold, "threshold", 0.5, "probability cutoff for a hemolytic call [0.5]")
	fs.IntVar(&o.BatchSize, "batch-size", 32, "matrices densified per network application [32]")

	fs.StringVar(&o.Output, "output", "text", "output format: text | json [text]")
	fs.StringVar(&o.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
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
	if o.Version {
		return o, nil
	}
	o.Header = !noHeader

	if len(posArgs) > 0 {
		return o, fmt.Errorf("unexpected positional argument %q", posArgs[0])
	}
	if o.Dataset == "" {
		return o, errors.New("--dataset is required")
	}
	if o.Model == "" {
		return o, errors.New("--model is required")
	}
	if o.Threshold <= 0 || o.Threshold >= 1 {
		return o, errors.New("--threshold must be inside (0,1)")
	}
	if o.BatchSize <= 0 {
		return o, errors.New("--batch-size must be > 0")
	}
	if o.Output != "text" && o.Output != "json" {
		return o, fmt.Errorf("invalid --output %q", o.Output)
	}
	return o, nil
}

// internal/traincli/options.go
package traincli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"pepvec/internal/clibase"
	"pepvec/internal/cliutil"
	"pepvec/internal/version"
)

// Options holds the flags of pepvec-train. The trainer consumes the
// packed dataset artifact, not the raw tables, so it does not share the
// table-input flag block of the other tools.
type Options struct {
	Dataset    string
	ModelOut   string
	MarkupFile string

	BatchSize int
	Rate      float64
	Iters     int

	TrainOnAll bool

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
		fmt.Fprintf(out, "  %s --dataset dataset.bin --model clf.bin --iters 2000\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --dataset file          Packed dataset archive from 'pepvec -o bin' [*]")
		fmt.Fprintf(out, "      --markup-file file      Net topology markup (empty = built-in conv net) [%s]\n", def("markup-file"))

		fmt.Fprintln(out, "\nTraining:")
		fmt.Fprintf(out, "      --batch-size int        Mini-batch size [%s]\n", def("batch-size"))
		fmt.Fprintf(out, "      --rate float            Adam step size [%s]\n", def("rate"))
		fmt.Fprintf(out, "      --iters int             Batches to train (0 = until Ctrl-C) [%s]\n", def("iters"))
		fmt.Fprintf(out, "      --all                   Train on every record, not just the train set [%s]\n", def("all"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -m, --model file            Where to write the trained classifier [*]")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress the per-iteration cost log [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("pepvec-train"), nil) }

// PrintExamples prints a tiny quickstart for pepvec-train.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "pepvec-train", func(w io.Writer) {
		fmt.Fprintln(w, "Train the convolutional hemolysis classifier.")
		fmt.Fprintln(w, "\nExamples:")
		fmt.Fprintln(w, "  pepvec ... --output bin > dataset.bin")
		fmt.Fprintln(w, "  pepvec-train --dataset dataset.bin --model clf.bin --iters 2000")
		fmt.Fprintln(w, "\nCtrl-C stops training early; the model is still saved.")
	})
}

// ParseArgs registers and parses all flags for pepvec-train.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	fs.StringVar(&o.Dataset, "dataset", "", "packed dataset archive [*]")
	fs.StringVar(&o.Dataset, "i", "", "alias of --dataset")
	fs.StringVar(&o.ModelOut, "model", "", "trained classifier output path [*]")
	fs.StringVar(&o.ModelOut, "m", "", "alias of --model")
	fs.StringVar(&o.MarkupFile, "markup-file", "", "net topology markup file (empty = built-in) []")

	fs.IntVar(&o.BatchSize, "batch-size", 32, "mini-batch size [32]")
	fs.Float64Var(&o.Rate, "rate", 0.001, "Adam step size [0.001]")
	fs.IntVar(&o.Iters, "iters", 0, "batches to train (0 = until Ctrl-C) [0]")
	fs.BoolVar(&o.TrainOnAll, "all", false, "train on every record, not just the train set [false]")

	fs.BoolVar(&o.Quiet, "quiet", false, "suppress the per-iteration cost log [false]")
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

	if len(posArgs) > 0 {
		return o, fmt.Errorf("unexpected positional argument %q", posArgs[0])
	}
	if o.Dataset == "" {
		return o, errors.New("--dataset is required")
	}
	if o.ModelOut == "" {
		return o, errors.New("--model is required")
	}
	if o.BatchSize <= 0 {
		return o, errors.New("--batch-size must be > 0")
	}
	if o.Rate <= 0 {
		return o, errors.New("--rate must be > 0")
	}
	if o.Iters < 0 {
		return o, errors.New("--iters must be ≥ 0")
	}
	if o.MarkupFile != "" {
		if _, err := os.Stat(o.MarkupFile); err != nil {
			return o, fmt.Errorf("--markup-file: %v", err)
		}
	}
	return o, nil
}

// internal/plotcli/options.go
package plotcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"pepvec/internal/clibase"
	"pepvec/internal/cliutil"
	"pepvec/internal/version"
)

// Options holds the flags of pepvec-plot.
type Options struct {
	EmbedFile string

	PCAOut  string
	HeatOut string

	Neighbors string
	Top       int

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
		fmt.Fprintf(out, "  %s -e tokens.vec --pca tokens.svg --heatmap tokens.png\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -e, --embeddings file       Token embedding table, word2vec text format [*]")

		fmt.Fprintln(out, "\nPlots:")
		fmt.Fprintln(out, "      --pca file.svg          PCA projection scatter of all token vectors")
		fmt.Fprintln(out, "      --heatmap file.png      Token cosine-similarity heat map")

		fmt.Fprintln(out, "\nNeighbors:")
		fmt.Fprintln(out, "      --neighbors token       Print nearest neighbors of a token instead of plotting")
		fmt.Fprintf(out, "      --top int               Neighbors to print [%s]\n", def("top"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential notes [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("pepvec-plot"), nil) }

// PrintExamples prints a tiny quickstart for pepvec-plot.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "pepvec-plot", func(w io.Writer) {
		fmt.Fprintln(w, "Visualize a trained token embedding table.")
		fmt.Fprintln(w, "\nExamples:")
		fmt.Fprintln(w, "  pepvec-plot -e tokens.vec --pca tokens.svg")
		fmt.Fprintln(w, "  pepvec-plot -e tokens.vec --heatmap tokens.png")
		fmt.Fprintln(w, "  pepvec-plot -e tokens.vec --neighbors Ghelix --top 10")
	})
}

// ParseArgs registers and parses all flags for pepvec-plot.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	fs.StringVar(&o.EmbedFile, "embeddings", "", "token embedding table, word2vec text format [*]")
	fs.StringVar(&o.EmbedFile, "e", "", "alias of --embeddings")
	fs.StringVar(&o.PCAOut, "pca", "", "PCA scatter output path (SVG) []")
	fs.StringVar(&o.HeatOut, "heatmap", "", "cosine-similarity heat map output path (PNG) []")
	fs.StringVar(&o.Neighbors, "neighbors", "", "print nearest neighbors of this token []")
	fs.IntVar(&o.Top, "top", 10, "neighbors to print [10]")

	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential notes [false]")
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
	if o.EmbedFile == "" {
		return o, errors.New("--embeddings is required")
	}
	if o.PCAOut == "" && o.HeatOut == "" && o.Neighbors == "" {
		return o, errors.New("nothing to do: give --pca, --heatmap, or --neighbors")
	}
	if o.Top <= 0 {
		return o, errors.New("--top must be > 0")
	}
	return o, nil
}

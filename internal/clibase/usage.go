// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"pepvec/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage examples, extra flag blocks, etc.).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – peptide embedding feature toolkit\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		// Tool-specific additions (usage examples, extra sections)
		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        Sequence CSV (id?, sequence, label) or '-' for STDIN [*]")
		fmt.Fprintln(out, "  -d, --structures file       Structure CSV (sequence, structure) or '-' [*]")
		fmt.Fprintln(out, "  -e, --embeddings file       Token embedding table, word2vec text format [*]")

		fmt.Fprintln(out, "\nTokens:")
		fmt.Fprintf(out, "      --max-len int           Matrix row count; longer peptides are rejected (0=longest observed) [%s]\n", def("max-len"))
		fmt.Fprintf(out, "      --strict-hec            Accept only H/E/C structure codes, no DSSP reduction [%s]\n", def("strict-hec"))

		fmt.Fprintln(out, "\nSplit:")
		fmt.Fprintf(out, "      --train-frac float      Fraction of records assigned to the training split [%s]\n", def("train-frac"))
		fmt.Fprintf(out, "      --seed int              Permutation seed for --split-by=perm [%s]\n", def("seed"))
		fmt.Fprintf(out, "      --split-by string       Split mode: perm | hash [%s]\n", def("split-by"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output format, see Examples above [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-records-exit-code int  Exit code when no records survive assembly [%s]\n", def("no-records-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"pepvec-core/featmat"

	"pepvec/internal/cliutil"
)

// Common holds CLI fields shared by the pepvec tool family.
type Common struct {
	// Input
	SeqTable    string   // sequence table (id?, sequence, label)
	StructTable string   // structure table (sequence, structure)
	EmbedFile   string   // token embedding table (word2vec text format)
	Inputs      []string // positional inputs, for tools that accept them

	// Tokens
	MaxLen    int
	StrictHEC bool

	// Split
	TrainFrac float64
	Seed      int64
	SplitBy   string // perm | hash

	// Performance
	Threads int

	// Output
	Output            string
	Header            bool
	NoRecordsExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Inputs
	fs.StringVar(&c.SeqTable, "sequences", "", "sequence CSV (id?, sequence, label) or '-'")
	fs.StringVar(&c.StructTable, "structures", "", "structure CSV (sequence, structure) or '-'")
	fs.StringVar(&c.EmbedFile, "embeddings", "", "token embedding table, word2vec text format")
	fs.StringVar(&c.SeqTable, "s", "", "alias of --sequences")
	fs.StringVar(&c.StructTable, "d", "", "alias of --structures")
	fs.StringVar(&c.EmbedFile, "e", "", "alias of --embeddings")

	// Tokens
	fs.IntVar(&c.MaxLen, "max-len", featmat.DefaultMaxLen, "matrix row count; longer peptides are rejected (0=longest observed)")
	fs.BoolVar(&c.StrictHEC, "strict-hec", false, "accept only H/E/C structure codes, no DSSP reduction [false]")

	// Split
	fs.Float64Var(&c.TrainFrac, "train-frac", 0.8, "fraction of records assigned to the training split [0.8]")
	fs.Int64Var(&c.Seed, "seed", 42, "permutation seed for --split-by=perm [42]")
	fs.StringVar(&c.SplitBy, "split-by", "perm", "split mode: perm | hash [perm]")

	// Performance
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output format, see tool help for choices [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&c.NoRecordsExitCode, "no-records-exit-code", 1, "exit code when no records survive assembly [1]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes header and expands positionals, then runs shared validation.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandGlobs(posArgs)
		if err != nil {
			return err
		}
		c.Inputs = append(c.Inputs, exp...)
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools. Output-format and
// required-input checks vary per tool and live with each tool's options.
func Validate(c *Common) error {
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.MaxLen < 0 {
		return errors.New("--max-len must be ≥ 0")
	}
	if c.TrainFrac < 0 || c.TrainFrac > 1 {
		return fmt.Errorf("--train-frac %v outside [0,1]", c.TrainFrac)
	}
	switch c.SplitBy {
	case "perm", "hash":
	default:
		return fmt.Errorf("invalid --split-by %q", c.SplitBy)
	}
	if c.NoRecordsExitCode < 0 || c.NoRecordsExitCode > 255 {
		return errors.New("--no-records-exit-code must be between 0 and 255")
	}
	return nil
}

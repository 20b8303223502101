package pretty

import (
	"fmt"
	"strings"

	"pepvec/internal/dataset"
)

// Options control the ASCII token block.
type Options struct {
	// Column cap for long peptides. If <=0, use default (40).
	MaxCols int

	// Glyph marking helix/sheet/coil columns on the class row.
	HelixGlyph string // default "h"
	SheetGlyph string // default "s"
	CoilGlyph  string // default "c"
}

// DefaultOptions keeps the current look & feel.
var DefaultOptions = Options{
	MaxCols:    40,
	HelixGlyph: "h",
	SheetGlyph: "s",
	CoilGlyph:  "c",
}

const (
	linePrefix = "# "
	elision    = ".."
)

func (o Options) classGlyph(cl string) string {
	switch cl {
	case "helix":
		if o.HelixGlyph != "" {
			return o.HelixGlyph
		}
		return DefaultOptions.HelixGlyph
	case "sheet":
		if o.SheetGlyph != "" {
			return o.SheetGlyph
		}
		return DefaultOptions.SheetGlyph
	default:
		if o.CoilGlyph != "" {
			return o.CoilGlyph
		}
		return DefaultOptions.CoilGlyph
	}
}

// RenderRecordWithOptions prints the per-record token block: the residue
// row over its structure-class row, column-aligned, capped at MaxCols with
// elision. Rows loaded back from serialized datasets carry no tokens and
// render as a single note line.
func RenderRecordWithOptions(r dataset.Row, opt Options) string {
	var b strings.Builder

	n := len(r.Tokens)
	if n == 0 {
		fmt.Fprintf(&b, "%s%s (token detail not available)\n#\n", linePrefix, r.ID)
		return b.String()
	}

	maxCols := opt.MaxCols
	if maxCols <= 0 {
		maxCols = DefaultOptions.MaxCols
	}
	shown := n
	elided := false
	if shown > maxCols {
		shown = maxCols - 1
		elided = true
	}

	seqRow := make([]string, 0, shown+1)
	clsRow := make([]string, 0, shown+1)
	for _, tok := range r.Tokens[:shown] {
		seqRow = append(seqRow, string(tok.Amino()))
		clsRow = append(clsRow, opt.classGlyph(string(tok.Class())))
	}
	if elided {
		seqRow = append(seqRow, elision)
		clsRow = append(clsRow, elision)
	}

	fmt.Fprintf(&b, "%sseq    %s\n", linePrefix, strings.Join(seqRow, " "))
	fmt.Fprintf(&b, "%sstruct %s\n", linePrefix, strings.Join(clsRow, " "))
	b.WriteString("#\n")
	return b.String()
}

// RenderRecord keeps backward compat (uses DefaultOptions).
func RenderRecord(r dataset.Row) string {
	return RenderRecordWithOptions(r, DefaultOptions)
}

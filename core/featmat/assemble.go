// core/featmat/assemble.go
package featmat

import (
	"fmt"

	"pepvec-core/embed"
	"pepvec-core/token"
)

// An UnknownTokenError reports a token absent from the embedding table.
// No fallback vector is ever substituted; the caller decides whether to
// skip the peptide or stop.
type UnknownTokenError struct {
	ID    string
	Token string
	Pos   int // 1-based
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("record %s: token %q at %d not in embedding table", e.ID, e.Token, e.Pos)
}

// A TooLongError reports a peptide that exceeds the fixed matrix height.
// Truncating would change the biological entity represented, so long
// peptides are rejected instead.
type TooLongError struct {
	ID     string
	Len    int
	MaxLen int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("record %s: %d tokens exceed max length %d", e.ID, e.Len, e.MaxLen)
}

// An Assembler turns token sequences into fixed-shape embedding matrices
// against one immutable table. Assemble is safe for concurrent use.
type Assembler struct {
	Table  *embed.Table
	MaxLen int
}

// Assemble builds the matrix for one peptide: row i holds the embedding
// of toks[i], rows beyond the token count stay zero. Identical inputs
// produce bit-identical matrices.
func (a *Assembler) Assemble(id string, toks []token.Token) (*Matrix, error) {
	if len(toks) > a.MaxLen {
		return nil, &TooLongError{ID: id, Len: len(toks), MaxLen: a.MaxLen}
	}
	rows := make([][]float32, len(toks))
	for i, tok := range toks {
		vec, ok := a.Table.Vector(string(tok))
		if !ok {
			return nil, &UnknownTokenError{ID: id, Token: string(tok), Pos: i + 1}
		}
		rows[i] = vec
	}
	return &Matrix{id: id, rows: rows, maxLen: a.MaxLen, dim: a.Table.Dim()}, nil
}

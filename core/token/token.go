// core/token/token.go
package token

import (
	"fmt"
	"strings"

	"pepvec-core/peptide"
)

// Class is the reduced secondary-structure class of one residue.
type Class string

const (
	Helix Class = "helix"
	Sheet Class = "sheet"
	Coil  Class = "coil"
)

// Token is one amino acid fused with its structure class, e.g. "Ghelix".
// Tokens are the unit of embedding lookup.
type Token string

// New builds the token for one residue/class pair.
func New(aa byte, cl Class) Token {
	return Token(string(aa) + string(cl))
}

// Amino returns the token's residue letter.
func (t Token) Amino() byte { return t[0] }

// Class returns the token's structure class.
func (t Token) Class() Class { return Class(t[1:]) }

// A LengthMismatchError reports sequence and structure strings whose
// lengths disagree. No partial token list is produced: a misaligned pair
// would corrupt every downstream token position.
type LengthMismatchError struct {
	ID        string
	SeqLen    int
	StructLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("record %s: sequence length %d != structure length %d",
		e.ID, e.SeqLen, e.StructLen)
}

// An UnknownStructureCodeError reports a structure code outside the
// accepted alphabet.
type UnknownStructureCodeError struct {
	ID   string
	Code byte
	Pos  int // 1-based
}

func (e *UnknownStructureCodeError) Error() string {
	return fmt.Sprintf("record %s: unknown structure code %q at %d", e.ID, e.Code, e.Pos)
}

// A Tokenizer converts merged records into structure-aware 1-gram tokens.
// The zero value accepts the full DSSP alphabet.
type Tokenizer struct {
	// StrictHEC restricts structure codes to H/E/C instead of reducing
	// the full DSSP 8-class alphabet.
	StrictHEC bool
}

// ExpandCode maps a single-letter structure code to its class using the
// standard 8-to-3 DSSP reduction: G/H/I helix, E/B sheet, T/S/C coil.
// '-' and ' ' mark unassigned residues and count as coil.
func (tk Tokenizer) ExpandCode(c byte) (Class, error) {
	if tk.StrictHEC {
		switch c {
		case 'H':
			return Helix, nil
		case 'E':
			return Sheet, nil
		case 'C':
			return Coil, nil
		}
		return "", fmt.Errorf("structure code %q outside H/E/C", c)
	}
	switch c {
	case 'H', 'G', 'I':
		return Helix, nil
	case 'E', 'B':
		return Sheet, nil
	case 'T', 'S', 'C', '-', ' ':
		return Coil, nil
	}
	return "", fmt.Errorf("structure code %q not in DSSP alphabet", c)
}

// Split pairs the i-th residue of rec.Seq with the i-th structure code of
// rec.Structure, producing one token per residue.
func (tk Tokenizer) Split(rec peptide.Record) ([]Token, error) {
	if len(rec.Seq) != len(rec.Structure) {
		return nil, &LengthMismatchError{
			ID:        rec.ID,
			SeqLen:    len(rec.Seq),
			StructLen: len(rec.Structure),
		}
	}
	toks := make([]Token, len(rec.Seq))
	for i := 0; i < len(rec.Seq); i++ {
		cl, err := tk.ExpandCode(rec.Structure[i])
		if err != nil {
			return nil, &UnknownStructureCodeError{ID: rec.ID, Code: rec.Structure[i], Pos: i + 1}
		}
		toks[i] = New(rec.Seq[i], cl)
	}
	return toks, nil
}

// Split tokenizes rec with the default Tokenizer.
func Split(rec peptide.Record) ([]Token, error) {
	return Tokenizer{}.Split(rec)
}

// Sentence renders tokens as one space-separated corpus line.
func Sentence(toks []Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(tok))
	}
	return b.String()
}

// core/peptide/validate.go
package peptide

import (
	"fmt"
	"unicode"
)

// The 20 canonical amino acids plus X for ambiguous residues.
var amino = map[rune]bool{
	'A': true, 'C': true, 'D': true, 'E': true, 'F': true,
	'G': true, 'H': true, 'I': true, 'K': true, 'L': true,
	'M': true, 'N': true, 'P': true, 'Q': true, 'R': true,
	'S': true, 'T': true, 'V': true, 'W': true, 'Y': true,
	'X': true,
}

// Normalize removes spaces/quotes and uppercases residues.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// ValidateSeq returns a normalized sequence or an error if any residue is
// outside the amino-acid alphabet.
func ValidateSeq(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", fmt.Errorf("empty sequence")
	}
	for i, r := range s {
		if !amino[r] {
			return "", fmt.Errorf("invalid residue %q at %d; allowed: A C D E F G H I K L M N P Q R S T V W Y X", r, i+1)
		}
	}
	return s, nil
}

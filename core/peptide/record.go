// core/peptide/record.go
package peptide

// Record is one peptide after the sequence and structure tables have been
// merged: the amino-acid sequence, its aligned secondary-structure string,
// and the hemolytic label.
type Record struct {
	ID        string
	Seq       string
	Structure string
	Hemolytic bool
}

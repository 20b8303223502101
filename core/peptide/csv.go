// core/peptide/csv.go
package peptide

import (
	"fmt"

	"github.com/gocarina/gocsv"

	"pepvec-core/fileio"
)

// SeqRow is one row of the sequence table: a peptide and its hemolytic
// label. The id column is optional; rows without one get positional IDs
// assigned during the merge.
type SeqRow struct {
	ID    string `csv:"id"`
	Seq   string `csv:"sequence"`
	Label int    `csv:"label"`
}

// StructRow is one row of the structure table: a peptide and its predicted
// secondary-structure string.
type StructRow struct {
	Seq       string `csv:"sequence"`
	Structure string `csv:"structure"`
}

// LoadSeqCSV reads the sequence table from path ("-" for stdin, gzip ok).
func LoadSeqCSV(path string) ([]SeqRow, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	var rows []SeqRow
	if err := gocsv.Unmarshal(rc, &rows); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// LoadStructCSV reads the structure table from path ("-" for stdin, gzip ok).
func LoadStructCSV(path string) ([]StructRow, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	var rows []StructRow
	if err := gocsv.Unmarshal(rc, &rows); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

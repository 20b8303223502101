// core/peptide/merge.go
package peptide

import (
	"fmt"
	"strings"

	"pepvec-core/errlist"
)

// A DuplicateKeyError reports a join key that recurs with a conflicting
// payload, which would make the join ambiguous.
type DuplicateKeyError struct {
	Table    string // "sequence" or "structure"
	Key      string
	FirstRow int // 1-based data row of the first occurrence
	DupRow   int // 1-based data row of the conflicting occurrence
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s table row %d: duplicate sequence %q conflicts with row %d",
		e.Table, e.DupRow, e.Key, e.FirstRow)
}

// MergeStats counts rows that did not survive the join.
type MergeStats struct {
	SeqOnly    int // sequence rows without a structure match
	StructOnly int // structure rows without a sequence match
	Collapsed  int // byte-identical duplicate rows collapsed
}

type seqEntry struct {
	row SeqRow
	n   int
}

type structEntry struct {
	row     StructRow
	n       int
	matched bool
}

// Merge inner-joins the two tables on the normalized sequence string. Only
// sequences present in both tables survive; unmatched rows are counted in
// the stats, never dropped silently. Byte-identical duplicate rows
// collapse; a key recurring with a different payload fails with a
// DuplicateKeyError. All problems found in the pass are reported together.
// Output order follows the first appearance in the sequence table.
func Merge(seqRows []SeqRow, structRows []StructRow) ([]Record, MergeStats, error) {
	var (
		errs  errlist.List
		stats MergeStats
	)

	seqByKey := make(map[string]seqEntry, len(seqRows))
	var order []string
	for i, r := range seqRows {
		n := i + 1
		seq, err := ValidateSeq(r.Seq)
		if err != nil {
			errs.Add(fmt.Errorf("sequence table row %d: %v", n, err))
			continue
		}
		if r.Label != 0 && r.Label != 1 {
			errs.Add(fmt.Errorf("sequence table row %d: label %d outside {0,1}", n, r.Label))
			continue
		}
		if prev, ok := seqByKey[seq]; ok {
			if prev.row.ID == r.ID && prev.row.Label == r.Label {
				stats.Collapsed++
				continue
			}
			errs.Add(&DuplicateKeyError{Table: "sequence", Key: seq, FirstRow: prev.n, DupRow: n})
			continue
		}
		r.Seq = seq
		seqByKey[seq] = seqEntry{row: r, n: n}
		order = append(order, seq)
	}

	structByKey := make(map[string]structEntry, len(structRows))
	for i, r := range structRows {
		n := i + 1
		seq, err := ValidateSeq(r.Seq)
		if err != nil {
			errs.Add(fmt.Errorf("structure table row %d: %v", n, err))
			continue
		}
		structure := strings.TrimSpace(r.Structure)
		if structure == "" {
			errs.Add(fmt.Errorf("structure table row %d: empty structure", n))
			continue
		}
		if prev, ok := structByKey[seq]; ok {
			if prev.row.Structure == structure {
				stats.Collapsed++
				continue
			}
			errs.Add(&DuplicateKeyError{Table: "structure", Key: seq, FirstRow: prev.n, DupRow: n})
			continue
		}
		r.Seq = seq
		r.Structure = structure
		structByKey[seq] = structEntry{row: r, n: n}
	}

	var out []Record
	nextID := 0
	for _, key := range order {
		se := seqByKey[key]
		st, ok := structByKey[key]
		if !ok {
			stats.SeqOnly++
			continue
		}
		st.matched = true
		structByKey[key] = st
		id := se.row.ID
		if id == "" {
			nextID++
			id = fmt.Sprintf("pep%04d", nextID)
		}
		out = append(out, Record{
			ID:        id,
			Seq:       key,
			Structure: st.row.Structure,
			Hemolytic: se.row.Label == 1,
		})
	}
	for _, st := range structByKey {
		if !st.matched {
			stats.StructOnly++
		}
	}

	seen := make(map[string]bool, len(out))
	for _, rec := range out {
		if seen[rec.ID] {
			errs.Add(fmt.Errorf("sequence table: duplicate id %q", rec.ID))
			continue
		}
		seen[rec.ID] = true
	}

	if err := errs.Err(); err != nil {
		return nil, stats, err
	}
	return out, stats, nil
}

// core/fasta/pair.go
package fasta

import (
	"fmt"
	"strings"

	"pepvec-core/errlist"
	"pepvec-core/peptide"
)

type pairEntry struct {
	rec     Record
	n       int
	matched bool
}

// Pair inner-joins a sequence FASTA against a structure FASTA on record
// ID. Only IDs present in both files survive; unmatched records are
// counted, never dropped silently. Byte-identical duplicates collapse; an
// ID recurring with a different payload fails with a DuplicateKeyError.
// All problems found in the pass are reported together. Output order
// follows the sequence file. FASTA carries no hemolytic label, so every
// paired record is labeled non-hemolytic.
func Pair(seqs, structs []Record) ([]peptide.Record, peptide.MergeStats, error) {
	var (
		errs  errlist.List
		stats peptide.MergeStats
	)

	seqByID := make(map[string]pairEntry, len(seqs))
	var order []string
	for i, r := range seqs {
		n := i + 1
		seq, err := peptide.ValidateSeq(r.Seq)
		if err != nil {
			errs.Add(fmt.Errorf("sequence fasta record %d (%s): %v", n, r.ID, err))
			continue
		}
		if prev, ok := seqByID[r.ID]; ok {
			if prev.rec.Seq == seq {
				stats.Collapsed++
				continue
			}
			errs.Add(&peptide.DuplicateKeyError{Table: "sequence", Key: r.ID, FirstRow: prev.n, DupRow: n})
			continue
		}
		r.Seq = seq
		seqByID[r.ID] = pairEntry{rec: r, n: n}
		order = append(order, r.ID)
	}

	structByID := make(map[string]pairEntry, len(structs))
	for i, r := range structs {
		n := i + 1
		structure := strings.TrimSpace(r.Seq)
		if structure == "" {
			errs.Add(fmt.Errorf("structure fasta record %d (%s): empty structure", n, r.ID))
			continue
		}
		if prev, ok := structByID[r.ID]; ok {
			if prev.rec.Seq == structure {
				stats.Collapsed++
				continue
			}
			errs.Add(&peptide.DuplicateKeyError{Table: "structure", Key: r.ID, FirstRow: prev.n, DupRow: n})
			continue
		}
		r.Seq = structure
		structByID[r.ID] = pairEntry{rec: r, n: n}
	}

	var out []peptide.Record
	for _, id := range order {
		se := seqByID[id]
		st, ok := structByID[id]
		if !ok {
			stats.SeqOnly++
			continue
		}
		st.matched = true
		structByID[id] = st
		out = append(out, peptide.Record{
			ID:        id,
			Seq:       se.rec.Seq,
			Structure: st.rec.Seq,
		})
	}
	for _, st := range structByID {
		if !st.matched {
			stats.StructOnly++
		}
	}

	if err := errs.Err(); err != nil {
		return nil, stats, err
	}
	return out, stats, nil
}

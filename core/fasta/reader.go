// core/fasta/reader.go

// Package fasta reads peptide FASTA files whole. Records are short, so
// nothing here windows or chunks sequences; a file parses into memory
// and downstream validation decides what the bytes mean.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"pepvec-core/fileio"
)

// Record is one FASTA entry. Seq keeps whatever the file spelled;
// validation happens when records are paired into peptides.
type Record struct {
	ID  string
	Seq string
}

// ReadAll parses every record from r. The ID is the first
// whitespace-separated token of the header, sequence lines concatenate,
// blank lines are skipped. Data before the first header is an error.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var (
		out  []Record
		id   string
		seq  strings.Builder
		seen bool
		ln   int
	)
	flush := func() {
		out = append(out, Record{ID: id, Seq: seq.String()})
		seq.Reset()
	}
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if seen {
				flush()
			}
			id = parseHeaderID([]byte(line[1:]))
			if id == "" {
				return nil, fmt.Errorf("fasta line %d: header has no id", ln)
			}
			seen = true
			continue
		}
		if !seen {
			return nil, fmt.Errorf("fasta line %d: sequence data before first header", ln)
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	if seen {
		flush()
	}
	return out, nil
}

// ReadPath reads a whole FASTA file; "-" means stdin and gzip input is
// transparently decompressed.
func ReadPath(path string) ([]Record, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

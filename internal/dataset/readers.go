// internal/dataset/readers.go
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"pepvec-core/featmat"
	"pepvec-core/fileio"

	"pepvec/pkg/api"
)

// ReadJSONL parses records written by the jsonl writer. maxLen 0 sizes the
// matrices to the longest record in the stream; the jsonl format itself
// carries no dataset-wide shape.
func ReadJSONL(r io.Reader, maxLen int) (*Set, error) {
	var recs []api.RecordV1
	dec := json.NewDecoder(r)
	for {
		var rec api.RecordV1
		if err := dec.Decode(&rec); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("jsonl record %d: %w", len(recs)+1, err)
		}
		recs = append(recs, rec)
	}
	return fromAPIRecords(recs, maxLen)
}

// ReadJSON parses a whole-dataset JSON document written by the json writer.
func ReadJSON(r io.Reader) (*Set, error) {
	var ds api.DatasetV1
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("dataset json: %w", err)
	}
	set, err := fromAPIRecords(ds.Records, ds.MaxLen)
	if err != nil {
		return nil, err
	}
	if ds.Dim != 0 && set.Dim != 0 && ds.Dim != set.Dim {
		return nil, fmt.Errorf("dataset json: header dim %d != row dim %d", ds.Dim, set.Dim)
	}
	if set.Dim == 0 {
		set.Dim = ds.Dim
	}
	return set, nil
}

// ReadAuto loads a dataset artifact by extension: .json as a whole-dataset
// document, .jsonl (optionally gzipped) or '-' as JSON lines, anything else
// as the binary archive written by WriteFile.
func ReadAuto(path string) (*Set, error) {
	switch {
	case strings.HasSuffix(path, ".json") || strings.HasSuffix(path, ".json.gz"):
		rc, err := fileio.Open(path)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return ReadJSON(rc)
	case strings.HasSuffix(path, ".jsonl") || strings.HasSuffix(path, ".jsonl.gz") || path == "-":
		rc, err := fileio.Open(path)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return ReadJSONL(rc, 0)
	default:
		st, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		return st.Unpack()
	}
}

func fromAPIRecords(recs []api.RecordV1, maxLen int) (*Set, error) {
	dim := 0
	longest := 0
	for _, rec := range recs {
		if rec.Length != len(rec.Rows) {
			return nil, fmt.Errorf("record %s: length %d does not match %d rows", rec.ID, rec.Length, len(rec.Rows))
		}
		if len(rec.Rows) > longest {
			longest = len(rec.Rows)
		}
		if dim == 0 && len(rec.Rows) > 0 {
			dim = len(rec.Rows[0])
		}
	}
	if maxLen <= 0 {
		maxLen = longest
	}
	out := &Set{MaxLen: maxLen, Dim: dim}
	for _, rec := range recs {
		mtx, err := featmat.FromRows(rec.ID, rec.Rows, maxLen, dim)
		if err != nil {
			return nil, err
		}
		out.Rows = append(out.Rows, Row{ID: rec.ID, Label: rec.Label, Set: rec.Set, Matrix: mtx})
	}
	return out, nil
}

// internal/output/json.go
package output

import (
	"io"

	"pepvec/internal/dataset"
	"pepvec/internal/jsonutil"
	"pepvec/pkg/api"
)

// ToAPIRecord converts an assembled row to the stable wire schema (v1).
// Matrix rows are copied so the wire value never aliases the embedding
// table.
func ToAPIRecord(r dataset.Row) api.RecordV1 {
	rec := api.RecordV1{
		ID:     r.ID,
		Label:  r.Label,
		Set:    r.Set,
		Length: r.Matrix.Len(),
	}
	rec.Rows = make([][]float32, r.Matrix.Len())
	for i := range rec.Rows {
		rec.Rows[i] = append([]float32(nil), r.Matrix.Row(i)...)
	}
	return rec
}

// ToAPIDataset bundles rows with the dataset-wide shape and split settings.
func ToAPIDataset(set *dataset.Set, trainFrac float64, seed int64, splitBy string) api.DatasetV1 {
	ds := api.DatasetV1{
		MaxLen:    set.MaxLen,
		Dim:       set.Dim,
		TrainFrac: trainFrac,
		Seed:      seed,
		SplitBy:   splitBy,
		Records:   make([]api.RecordV1, 0, set.Len()),
	}
	for _, r := range set.Rows {
		ds.Records = append(ds.Records, ToAPIRecord(r))
	}
	return ds
}

// WriteJSON writes a whole dataset as a single pretty-indented document.
func WriteJSON(w io.Writer, ds api.DatasetV1) error {
	return jsonutil.EncodePretty(w, ds)
}

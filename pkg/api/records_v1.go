// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON/JSONL schema for one assembled record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	ID     string      `json:"id"`
	Label  int         `json:"label"` // 1 hemolytic, 0 non-hemolytic
	Set    string      `json:"set,omitempty"`
	Length int         `json:"length"`         // tokens before padding
	Rows   [][]float32 `json:"rows,omitempty"` // length×dim embedding rows, unpadded
}

// DatasetV1 is the stable schema for a whole assembled dataset. Consumers
// pad each record's rows with zeros up to MaxLen.
type DatasetV1 struct {
	MaxLen    int        `json:"max_len"`
	Dim       int        `json:"dim"`
	TrainFrac float64    `json:"train_frac,omitempty"`
	Seed      int64      `json:"seed,omitempty"`
	SplitBy   string     `json:"split_by,omitempty"`
	Records   []RecordV1 `json:"records"`
}

// WindowV1 is the stable JSONL schema for one token context window.
type WindowV1 struct {
	Left  []string `json:"left,omitempty"`
	Word  string   `json:"word"`
	Right []string `json:"right,omitempty"`
}

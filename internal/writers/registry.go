// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"pepvec/internal/dataset"
)

// Meta carries dataset-wide values that whole-set writers need at flush
// time; row streams alone cannot supply them.
type Meta struct {
	MaxLen    int
	Dim       int
	TrainFrac float64
	Seed      int64
	SplitBy   string
}

// RecordWriters maps format → whole-set writer. Formats that need every
// row before emitting anything (json, bin) register here in init() blocks;
// streaming formats are dispatched directly by StartRecordWriter.
var RecordWriters = map[string]func(w io.Writer, set *dataset.Set, meta Meta) error{}

// RegisterRecord installs a whole-set writer (idempotent, last wins).
func RegisterRecord(format string, fn func(io.Writer, *dataset.Set, Meta) error) {
	RecordWriters[format] = fn
}

// WriteRecords dispatches a buffered set to the registered writer.
func WriteRecords(format string, w io.Writer, set *dataset.Set, meta Meta) error {
	fn, ok := RecordWriters[format]
	if !ok {
		return fmt.Errorf("unknown record format %q (no writer registered)", format)
	}
	return fn(w, set, meta)
}

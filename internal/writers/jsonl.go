// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"github.com/unixpickle/wordembed/word2vec"

	"pepvec/internal/dataset"
	"pepvec/internal/jsonlutil"
	"pepvec/internal/output"
	"pepvec/pkg/api"
)

// StartRecordJSONLWriter streams each assembled row as one JSON line (v1).
func StartRecordJSONLWriter(out io.Writer, bufSize int) (chan<- dataset.Row, <-chan error) {
	return jsonlutil.Start[dataset.Row](out, bufSize,
		func(enc *json.Encoder, r dataset.Row) error {
			return enc.Encode(output.ToAPIRecord(r))
		},
		IsBrokenPipe,
	)
}

// StartWindowJSONLWriter streams each context window as one JSON line (v1).
func StartWindowJSONLWriter(out io.Writer, bufSize int) (chan<- *word2vec.Sample, <-chan error) {
	return jsonlutil.Start[*word2vec.Sample](out, bufSize,
		func(enc *json.Encoder, s *word2vec.Sample) error {
			return enc.Encode(api.WindowV1{Left: s.Left, Word: s.Word, Right: s.Right})
		},
		IsBrokenPipe,
	)
}

// internal/appcore/writer_factories.go
package appcore

import (
	"io"

	"github.com/unixpickle/wordembed/word2vec"

	"pepvec/internal/dataset"
	"pepvec/internal/output"
	"pepvec/internal/writers"
)

// ---------------- Record writer ----------------

type RecordWriterFactory struct {
	Format string
	Header bool
	Pretty bool
	Meta   writers.Meta
}

func NewRecordWriterFactory(format string, header, pretty bool, meta writers.Meta) RecordWriterFactory {
	return RecordWriterFactory{Format: format, Header: header, Pretty: pretty, Meta: meta}
}

// NeedTokens reports whether rows must carry their token slices; only
// the pretty text renderer reads them.
func (w RecordWriterFactory) NeedTokens() bool {
	return w.Format == output.FormatText && w.Pretty
}

func (w RecordWriterFactory) Start(out io.Writer, bufSize int) (chan<- dataset.Row, <-chan error) {
	return writers.StartRecordWriter(out, w.Format, w.Header, w.Pretty, w.Meta, bufSize)
}

// ---------------- Sentence writer ----------------

type SentenceWriterFactory struct{}

func (SentenceWriterFactory) Start(out io.Writer, bufSize int) (chan<- string, <-chan error) {
	return writers.StartSentenceWriter(out, bufSize)
}

// ---------------- Window writer ----------------

type WindowWriterFactory struct{}

func (WindowWriterFactory) Start(out io.Writer, bufSize int) (chan<- *word2vec.Sample, <-chan error) {
	return writers.StartWindowJSONLWriter(out, bufSize)
}

// internal/writers/records.go
package writers

import (
	"fmt"
	"io"

	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/serializer"

	"pepvec/internal/dataset"
	"pepvec/internal/output"
	"pepvec/internal/pretty"
)

func init() {
	RegisterRecord(output.FormatJSON, func(w io.Writer, set *dataset.Set, meta Meta) error {
		return output.WriteJSON(w, output.ToAPIDataset(set, meta.TrainFrac, meta.Seed, meta.SplitBy))
	})
	RegisterRecord(output.FormatBin, func(w io.Writer, set *dataset.Set, meta Meta) error {
		st := dataset.Pack(anyvec32.CurrentCreator(), set)
		st.Meta.TrainFrac = meta.TrainFrac
		st.Meta.Seed = meta.Seed
		st.Meta.SplitBy = meta.SplitBy
		data, err := serializer.SerializeWithType(st)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
}

// StartRecordWriter spins up a writer goroutine for assembled rows.
// (Backward-compatible wrapper using pretty.DefaultOptions.)
func StartRecordWriter(out io.Writer, format string, header, prettyMode bool, meta Meta, bufSize int) (chan<- dataset.Row, <-chan error) {
	return StartRecordWriterWithPrettyOptions(out, format, header, prettyMode, pretty.DefaultOptions, meta, bufSize)
}

// StartRecordWriterWithPrettyOptions allows customizing the pretty renderer.
// The goroutine always drains its channel, so producers never block on a
// writer that failed mid-stream.
func StartRecordWriterWithPrettyOptions(out io.Writer, format string, header, prettyMode bool, popt pretty.Options, meta Meta, bufSize int) (chan<- dataset.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	if format == output.FormatJSONL {
		return StartRecordJSONLWriter(out, bufSize)
	}

	in := make(chan dataset.Row, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatText, output.FormatTSV:
			err = streamSummary(out, in, header, format == output.FormatText && prettyMode, popt)

		case output.FormatJSON, output.FormatBin:
			set := &dataset.Set{MaxLen: meta.MaxLen, Dim: meta.Dim}
			for r := range in {
				set.Rows = append(set.Rows, r)
			}
			err = WriteRecords(format, out, set, meta)

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		for range in {
			// drain so producers can finish
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}

func streamSummary(out io.Writer, in <-chan dataset.Row, header, prettyMode bool, popt pretty.Options) error {
	if header {
		if _, err := fmt.Fprintln(out, output.TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(out, output.FormatRowTSV(r)); err != nil {
			return err
		}
		if prettyMode {
			if _, err := io.WriteString(out, pretty.RenderRecordWithOptions(r, popt)); err != nil {
				return err
			}
		}
	}
	return nil
}

package writers

import (
	"io"
	"strings"
	"testing"

	"pepvec/internal/dataset"
	"pepvec/internal/output"
)

func TestRegisteredRecordFormats(t *testing.T) {
	for _, f := range []string{output.FormatJSON, output.FormatBin} {
		if _, ok := RecordWriters[f]; !ok {
			t.Errorf("format %q has no registered writer", f)
		}
	}
}

func TestWriteRecordsUnknownFormat(t *testing.T) {
	err := WriteRecords("bogus", io.Discard, &dataset.Set{}, Meta{})
	if err == nil || !strings.Contains(err.Error(), `"bogus"`) {
		t.Fatalf("expected unregistered-format error, got %v", err)
	}
}

// internal/jsonlutil/jsonlutil_test.go
package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStartRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	in, errCh := Start[int](buf, 2,
		func(enc *json.Encoder, v int) error { return enc.Encode(v) },
		func(error) bool { return false })
	for i := 0; i < 3; i++ {
		in <- i
	}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	if got := strings.Fields(buf.String()); len(got) != 3 || got[2] != "2" {
		t.Fatalf("lines: %q", buf.String())
	}
}

func TestStartDrainsAfterEncodeError(t *testing.T) {
	boom := errors.New("disk full")
	in, errCh := Start[int](&bytes.Buffer{}, 1,
		func(*json.Encoder, int) error { return boom },
		func(error) bool { return false })

	// Far more sends than the channel buffer holds: if the goroutine
	// stops reading after the failure, this producer blocks forever.
	sent := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			in <- i
		}
		close(in)
		close(sent)
	}()

	select {
	case <-sent:
	case <-time.After(5 * time.Second):
		t.Fatal("producer blocked on a failed writer")
	}
	if err := <-errCh; !errors.Is(err, boom) {
		t.Fatalf("want encode error, got %v", err)
	}
}

func TestStartSuppressesBrokenPipeMidStream(t *testing.T) {
	pipeErr := errors.New("broken pipe")
	in, errCh := Start[int](&bytes.Buffer{}, 1,
		func(*json.Encoder, int) error { return pipeErr },
		func(err error) bool { return errors.Is(err, pipeErr) })
	in <- 1
	in <- 2
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("broken pipe should be silent, got %v", err)
	}
}

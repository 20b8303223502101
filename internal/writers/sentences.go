// internal/writers/sentences.go
package writers

import (
	"bufio"
	"io"
)

// StartSentenceWriter streams plain text lines, one sentence per line, for
// feeding word2vec-style trainers.
func StartSentenceWriter(out io.Writer, bufSize int) (chan<- string, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan string, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		var err error
		for s := range in {
			if err != nil {
				continue // drain
			}
			if _, werr := bw.WriteString(s); werr != nil {
				err = werr
				continue
			}
			if werr := bw.WriteByte('\n'); werr != nil {
				err = werr
			}
		}
		if err == nil {
			err = bw.Flush()
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}

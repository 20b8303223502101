// core/embed/load.go
package embed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pepvec-core/fileio"
)

// Load parses a word2vec text-format embedding: a "count dim" header line
// followed by one "token v1 .. vD" row per token.
func Load(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("line 1: missing header")
	}
	hf := strings.Fields(sc.Text())
	if len(hf) != 2 {
		return nil, fmt.Errorf("line 1: header must be \"count dim\"")
	}
	count, err := strconv.Atoi(hf[0])
	if err != nil || count <= 0 {
		return nil, fmt.Errorf("line 1: bad count %q", hf[0])
	}
	dim, err := strconv.Atoi(hf[1])
	if err != nil || dim <= 0 {
		return nil, fmt.Errorf("line 1: bad dimension %q", hf[1])
	}

	vectors := make(map[string][]float32, count)
	ln := 1
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) != dim+1 {
			return nil, fmt.Errorf("line %d: %d fields, want %d", ln, len(f), dim+1)
		}
		tok := f[0]
		if _, dup := vectors[tok]; dup {
			return nil, fmt.Errorf("line %d: duplicate token %q", ln, tok)
		}
		vec := make([]float32, dim)
		for i, s := range f[1:] {
			v, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad value %q: %v", ln, s, err)
			}
			vec[i] = float32(v)
		}
		vectors[tok] = vec
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(vectors) != count {
		return nil, fmt.Errorf("header says %d tokens, file has %d", count, len(vectors))
	}
	return New(vectors)
}

// LoadPath reads an embedding table from path ("-" for stdin, gzip ok).
func LoadPath(path string) (*Table, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	t, err := Load(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// core/embed/table.go
package embed

import (
	"fmt"
	"sort"
)

// Table is an immutable token-to-vector lookup table. It is built once,
// before any parallel phase starts; afterwards any number of goroutines
// may read it concurrently because nothing ever writes to it again.
type Table struct {
	dim    int
	tokens []string
	ids    map[string]int
	vecs   [][]float32
}

// New builds a table from a token-to-vector map. All vectors must share
// one dimension. Token IDs are assigned in sorted token order so they are
// stable across runs.
func New(vectors map[string][]float32) (*Table, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("empty embedding table")
	}
	tokens := make([]string, 0, len(vectors))
	for tok := range vectors {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	dim := len(vectors[tokens[0]])
	if dim == 0 {
		return nil, fmt.Errorf("token %q: empty vector", tokens[0])
	}
	t := &Table{
		dim:    dim,
		tokens: tokens,
		ids:    make(map[string]int, len(tokens)),
		vecs:   make([][]float32, len(tokens)),
	}
	for i, tok := range tokens {
		vec := vectors[tok]
		if len(vec) != dim {
			return nil, fmt.Errorf("token %q: dimension %d != %d", tok, len(vec), dim)
		}
		t.ids[tok] = i
		t.vecs[i] = vec
	}
	return t, nil
}

// Dim returns the embedding dimension.
func (t *Table) Dim() int { return t.dim }

// Len returns the vocabulary size.
func (t *Table) Len() int { return len(t.tokens) }

// Vector returns the embedding for tok. The slice is shared with the
// table; callers must not modify it.
func (t *Table) Vector(tok string) ([]float32, bool) {
	id, ok := t.ids[tok]
	if !ok {
		return nil, false
	}
	return t.vecs[id], true
}

// ID returns tok's stable token ID.
func (t *Table) ID(tok string) (int, bool) {
	id, ok := t.ids[tok]
	return id, ok
}

// Token returns the token with the given ID.
func (t *Table) Token(id int) string { return t.tokens[id] }

// VectorAt returns the embedding for a token ID. Shared slice, read-only.
func (t *Table) VectorAt(id int) []float32 { return t.vecs[id] }

// Tokens returns a copy of the vocabulary in ID order.
func (t *Table) Tokens() []string {
	out := make([]string, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// internal/dataset/stored.go
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/anyvec/anyvecsave"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"

	"pepvec-core/featmat"
)

func init() {
	var s Stored
	serializer.RegisterTypedDeserializer(s.SerializerType(), DeserializeStored)
}

// Meta carries everything about a packed dataset except the float payload.
type Meta struct {
	MaxLen    int      `json:"max_len"`
	Dim       int      `json:"dim"`
	IDs       []string `json:"ids"`
	Labels    []int    `json:"labels"`
	Sets      []string `json:"sets,omitempty"`
	Lengths   []int    `json:"lengths"`
	TrainFrac float64  `json:"train_frac,omitempty"`
	Seed      int64    `json:"seed,omitempty"`
	SplitBy   string   `json:"split_by,omitempty"`
}

// Stored is the binary dataset artifact consumed by pepvec-train and
// pepvec-eval: record metadata plus every dense matrix packed row-major
// into a single vector of len(IDs)*MaxLen*Dim values.
type Stored struct {
	Meta Meta
	Flat anyvec.Vector
}

// Pack flattens an assembled Set into its storable form.
func Pack(c anyvec.Creator, set *Set) *Stored {
	meta := Meta{MaxLen: set.MaxLen, Dim: set.Dim}
	flat := make([]float64, 0, set.Len()*set.MaxLen*set.Dim)
	for _, r := range set.Rows {
		meta.IDs = append(meta.IDs, r.ID)
		meta.Labels = append(meta.Labels, r.Label)
		meta.Sets = append(meta.Sets, r.Set)
		meta.Lengths = append(meta.Lengths, r.Matrix.Len())
		for _, x := range r.Matrix.Flat() {
			flat = append(flat, float64(x))
		}
	}
	return &Stored{Meta: meta, Flat: c.MakeVectorData(c.MakeNumericList(flat))}
}

// Unpack rebuilds the Set, copying each record's populated rows back out of
// the flat payload.
func (s *Stored) Unpack() (*Set, error) {
	m := s.Meta
	n := len(m.IDs)
	if len(m.Labels) != n || len(m.Lengths) != n || (len(m.Sets) != 0 && len(m.Sets) != n) {
		return nil, errors.New("dataset: inconsistent metadata lengths")
	}
	stride := m.MaxLen * m.Dim
	data := vecData(s.Flat)
	if len(data) != n*stride {
		return nil, fmt.Errorf("dataset: packed payload has %d values, want %d", len(data), n*stride)
	}
	out := &Set{MaxLen: m.MaxLen, Dim: m.Dim}
	for i := 0; i < n; i++ {
		if m.Lengths[i] < 0 || m.Lengths[i] > m.MaxLen {
			return nil, fmt.Errorf("dataset: record %s has length %d outside [0,%d]", m.IDs[i], m.Lengths[i], m.MaxLen)
		}
		base := i * stride
		rows := make([][]float32, m.Lengths[i])
		for r := range rows {
			rows[r] = append([]float32(nil), data[base+r*m.Dim:base+(r+1)*m.Dim]...)
		}
		mtx, err := featmat.FromRows(m.IDs[i], rows, m.MaxLen, m.Dim)
		if err != nil {
			return nil, err
		}
		set := ""
		if len(m.Sets) == n {
			set = m.Sets[i]
		}
		out.Rows = append(out.Rows, Row{ID: m.IDs[i], Label: m.Labels[i], Set: set, Matrix: mtx})
	}
	return out, nil
}

// SerializerType returns the unique ID used to serialize a Stored with the
// serializer package.
func (s *Stored) SerializerType() string {
	return "pepvec/internal/dataset.Stored"
}

// Serialize serializes the Stored.
func (s *Stored) Serialize() ([]byte, error) {
	metaJSON, err := json.Marshal(s.Meta)
	if err != nil {
		return nil, essentials.AddCtx("serialize dataset", err)
	}
	return serializer.SerializeAny(serializer.Bytes(metaJSON), &anyvecsave.S{Vector: s.Flat})
}

// DeserializeStored attempts to deserialize a Stored.
func DeserializeStored(d []byte) (*Stored, error) {
	var metaJSON serializer.Bytes
	var vec *anyvecsave.S
	if err := serializer.DeserializeAny(d, &metaJSON, &vec); err != nil {
		return nil, essentials.AddCtx("deserialize dataset", err)
	}
	var m Meta
	if err := json.Unmarshal(metaJSON, &m); err != nil {
		return nil, essentials.AddCtx("deserialize dataset", err)
	}
	return &Stored{Meta: m, Flat: vec.Vector}, nil
}

// WriteFile writes the dataset archive to path.
func WriteFile(path string, s *Stored) error {
	data, err := serializer.SerializeWithType(s)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadFile loads a dataset archive written by WriteFile.
func ReadFile(path string) (*Stored, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	obj, err := serializer.DeserializeWithType(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s, ok := obj.(*Stored)
	if !ok {
		return nil, fmt.Errorf("%s: not a dataset archive (got %T)", path, obj)
	}
	return s, nil
}

func vecData(v anyvec.Vector) []float32 {
	switch data := v.Data().(type) {
	case []float32:
		return data
	case []float64:
		out := make([]float32, len(data))
		for i, x := range data {
			out[i] = float32(x)
		}
		return out
	default:
		panic(fmt.Sprintf("unsupported numeric type: %T", data))
	}
}

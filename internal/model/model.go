// internal/model/model.go

// Package model builds, trains, and applies the convolutional
// hemolysis classifier.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anynet"
	"github.com/unixpickle/anynet/anyconv"
	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/convmarkup"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"

	"pepvec-core/featmat"
)

const (
	convFilters = 64
	convWidth   = 8
	hiddenUnits = 64

	// DefaultBatchSize bounds how many matrices are densified at once
	// during prediction.
	DefaultBatchSize = 32
)

func init() {
	var c Classifier
	serializer.RegisterTypedDeserializer(c.SerializerType(), DeserializeClassifier)
}

// Classifier scores fixed-shape embedding matrices with a 1-D
// convolutional network. MaxLen and Dim pin the input shape the
// network was built for.
type Classifier struct {
	MaxLen int
	Dim    int
	Net    anynet.Net
}

// DefaultMarkup describes the standard topology for the given input
// shape: one convolution across the residue axis, max-pooling when the
// pooled width divides evenly, then two fully-connected layers down to
// a single logit.
func DefaultMarkup(maxLen, dim int) string {
	fw := convWidth
	if fw > maxLen {
		fw = maxLen
	}
	convW := maxLen - fw + 1

	var b strings.Builder
	fmt.Fprintf(&b, "Input(w=%d, h=1, d=%d)\n", maxLen, dim)
	fmt.Fprintf(&b, "Conv(w=%d, h=1, n=%d)\n", fw, convFilters)
	b.WriteString("ReLU\n")
	if p := poolSpan(convW); p > 1 {
		fmt.Fprintf(&b, "MaxPool(w=%d, h=1)\n", p)
	}
	fmt.Fprintf(&b, "FC(out=%d)\n", hiddenUnits)
	b.WriteString("ReLU\n")
	b.WriteString("FC(out=1)\n")
	return b.String()
}

// poolSpan picks the widest span that tiles the conv output exactly,
// so pooling never sees a partial window.
func poolSpan(convW int) int {
	for _, p := range []int{4, 3, 2} {
		if convW >= p && convW%p == 0 {
			return p
		}
	}
	return 1
}

// New builds a classifier for maxLen-by-dim inputs. An empty markup
// selects DefaultMarkup; explicit markup must declare a matching
// Input block.
func New(c anyvec.Creator, maxLen, dim int, markup string) (*Classifier, error) {
	if maxLen <= 0 || dim <= 0 {
		return nil, fmt.Errorf("invalid input shape %dx%d", maxLen, dim)
	}
	if markup == "" {
		markup = DefaultMarkup(maxLen, dim)
	} else if err := checkMarkupInput(markup, maxLen, dim); err != nil {
		return nil, err
	}
	layer, err := anyconv.FromMarkup(c, markup)
	if err != nil {
		return nil, essentials.AddCtx("build classifier", err)
	}
	net, ok := layer.(anynet.Net)
	if !ok {
		net = anynet.Net{layer}
	}
	return &Classifier{MaxLen: maxLen, Dim: dim, Net: net}, nil
}

// checkMarkupInput rejects a topology whose Input block disagrees with
// the dataset shape before any layer gets realized, so the user sees a
// shape message instead of an opaque realizer error.
func checkMarkupInput(code string, maxLen, dim int) error {
	parsed, err := convmarkup.Parse(code)
	if err != nil {
		return essentials.AddCtx("parse markup", err)
	}
	block, err := parsed.Block(convmarkup.Dims{}, convmarkup.DefaultCreators())
	if err != nil {
		return essentials.AddCtx("check markup", err)
	}
	root, ok := block.(*convmarkup.Root)
	if !ok || len(root.Children) == 0 {
		return errors.New("markup declares no blocks")
	}
	in := root.Children[0].OutDims()
	if in.Width != maxLen || in.Height != 1 || in.Depth != dim {
		return fmt.Errorf("markup input is %dx%dx%d, dataset wants %dx1x%d",
			in.Width, in.Height, in.Depth, maxLen, dim)
	}
	return nil
}

// Predict returns the probability that one peptide is hemolytic.
func (c *Classifier) Predict(cr anyvec.Creator, m *featmat.Matrix) (float64, error) {
	ps, err := c.PredictBatch(cr, []*featmat.Matrix{m}, 1)
	if err != nil {
		return 0, err
	}
	return ps[0], nil
}

// PredictBatch scores matrices in order, densifying at most batchSize
// of them per network application. Probabilities come from a sigmoid
// over the single output logit.
func (c *Classifier) PredictBatch(cr anyvec.Creator, ms []*featmat.Matrix, batchSize int) ([]float64, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	out := make([]float64, 0, len(ms))
	for start := 0; start < len(ms); start += batchSize {
		end := start + batchSize
		if end > len(ms) {
			end = len(ms)
		}
		chunk := ms[start:end]
		flat := make([]float64, 0, len(chunk)*c.MaxLen*c.Dim)
		for _, m := range chunk {
			if m.MaxLen() != c.MaxLen || m.Dim() != c.Dim {
				return nil, fmt.Errorf("record %s: matrix is %dx%d, model wants %dx%d",
					m.ID(), m.MaxLen(), m.Dim(), c.MaxLen, c.Dim)
			}
			for _, x := range m.Flat() {
				flat = append(flat, float64(x))
			}
		}
		in := anydiff.NewConst(cr.MakeVectorData(cr.MakeNumericList(flat)))
		res := c.Net.Apply(in, len(chunk)).Output()
		for _, logit := range vecData(res) {
			out = append(out, sigmoid(float64(logit)))
		}
	}
	return out, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

type classifierMeta struct {
	MaxLen int `json:"max_len"`
	Dim    int `json:"dim"`
}

// SerializerType returns the unique ID used to serialize a Classifier
// with the serializer package.
func (c *Classifier) SerializerType() string {
	return "pepvec/internal/model.Classifier"
}

// Serialize serializes the Classifier.
func (c *Classifier) Serialize() ([]byte, error) {
	metaJSON, err := json.Marshal(classifierMeta{MaxLen: c.MaxLen, Dim: c.Dim})
	if err != nil {
		return nil, essentials.AddCtx("serialize classifier", err)
	}
	return serializer.SerializeAny(serializer.Bytes(metaJSON), c.Net)
}

// DeserializeClassifier attempts to deserialize a Classifier.
func DeserializeClassifier(d []byte) (*Classifier, error) {
	var metaJSON serializer.Bytes
	var net anynet.Net
	if err := serializer.DeserializeAny(d, &metaJSON, &net); err != nil {
		return nil, essentials.AddCtx("deserialize classifier", err)
	}
	var m classifierMeta
	if err := json.Unmarshal(metaJSON, &m); err != nil {
		return nil, essentials.AddCtx("deserialize classifier", err)
	}
	return &Classifier{MaxLen: m.MaxLen, Dim: m.Dim, Net: net}, nil
}

// SaveFile writes the model archive to path.
func SaveFile(path string, c *Classifier) error {
	data, err := serializer.SerializeWithType(c)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadFile loads a model archive written by SaveFile.
func LoadFile(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	obj, err := serializer.DeserializeWithType(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c, ok := obj.(*Classifier)
	if !ok {
		return nil, fmt.Errorf("%s: not a model archive (got %T)", path, obj)
	}
	return c, nil
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

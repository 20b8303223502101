package model

import (
	"strings"
	"testing"

	"github.com/unixpickle/anynet/anyconv"
	"github.com/unixpickle/anynet/anyff"
	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/serializer"

	"pepvec-core/featmat"
)

func mkMatrix(t *testing.T, id string, rows [][]float32, maxLen, dim int) *featmat.Matrix {
	t.Helper()
	m, err := featmat.FromRows(id, rows, maxLen, dim)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

func TestDefaultMarkup(t *testing.T) {
	got := DefaultMarkup(133, 64)
	want := "Input(w=133, h=1, d=64)\n" +
		"Conv(w=8, h=1, n=64)\n" +
		"ReLU\n" +
		"MaxPool(w=3, h=1)\n" +
		"FC(out=64)\n" +
		"ReLU\n" +
		"FC(out=1)\n"
	if got != want {
		t.Fatalf("markup:\n got:\n%s\n want:\n%s", got, want)
	}
}

func TestDefaultMarkupShortInput(t *testing.T) {
	// maxLen below the filter width shrinks the filter; a width-1 conv
	// output leaves nothing to pool.
	got := DefaultMarkup(3, 2)
	if !strings.Contains(got, "Conv(w=3, h=1, n=64)") {
		t.Fatalf("filter should shrink to the input: %s", got)
	}
	if strings.Contains(got, "MaxPool") {
		t.Fatalf("width-1 conv output must not be pooled: %s", got)
	}
}

func TestPoolSpan(t *testing.T) {
	cases := []struct{ convW, want int }{
		{126, 3}, {8, 4}, {9, 3}, {10, 2}, {7, 1}, {1, 1},
	}
	for _, c := range cases {
		if got := poolSpan(c.convW); got != c.want {
			t.Errorf("poolSpan(%d) = %d, want %d", c.convW, got, c.want)
		}
	}
}

func TestNewBuildsConvNet(t *testing.T) {
	cl, err := New(anyvec32.CurrentCreator(), 4, 3, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(cl.Net) == 0 {
		t.Fatal("empty network")
	}
	if _, ok := cl.Net[0].(*anyconv.Conv); !ok {
		t.Fatalf("first layer is %T, want conv", cl.Net[0])
	}

	if _, err := New(anyvec32.CurrentCreator(), 0, 3, ""); err == nil {
		t.Fatal("zero maxLen must fail")
	}
}

func TestNewRejectsMismatchedMarkup(t *testing.T) {
	cr := anyvec32.CurrentCreator()

	good := "Input(w=4, h=1, d=3)\nFC(out=1)\n"
	if _, err := New(cr, 4, 3, good); err != nil {
		t.Fatalf("matching markup rejected: %v", err)
	}

	wrong := "Input(w=5, h=1, d=3)\nFC(out=1)\n"
	if _, err := New(cr, 4, 3, wrong); err == nil ||
		!strings.Contains(err.Error(), "dataset wants") {
		t.Fatalf("mismatched Input should fail, got %v", err)
	}

	if _, err := New(cr, 4, 3, "Input(w=4"); err == nil {
		t.Fatal("malformed markup should fail")
	}
}

func TestClassifierRoundTrip(t *testing.T) {
	cl, err := New(anyvec32.CurrentCreator(), 4, 3, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	data, err := serializer.SerializeWithType(cl)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	obj, err := serializer.DeserializeWithType(data)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	got, ok := obj.(*Classifier)
	if !ok {
		t.Fatalf("archive type: %T", obj)
	}
	if got.MaxLen != 4 || got.Dim != 3 || len(got.Net) != len(cl.Net) {
		t.Fatalf("round trip: maxLen=%d dim=%d layers=%d", got.MaxLen, got.Dim, len(got.Net))
	}
}

func TestSaveLoadFile(t *testing.T) {
	cl, err := New(anyvec32.CurrentCreator(), 4, 3, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	path := t.TempDir() + "/model.bin"
	if err := SaveFile(path, cl); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.MaxLen != 4 || got.Dim != 3 {
		t.Fatalf("loaded shape %dx%d", got.MaxLen, got.Dim)
	}
}

func TestPredictBatch(t *testing.T) {
	cr := anyvec32.CurrentCreator()
	cl, err := New(cr, 4, 3, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ms := []*featmat.Matrix{
		mkMatrix(t, "a", [][]float32{{1, 0, 0}, {0, 1, 0}}, 4, 3),
		mkMatrix(t, "b", [][]float32{{0, 0, 1}}, 4, 3),
		mkMatrix(t, "c", nil, 4, 3),
	}
	ps, err := cl.PredictBatch(cr, ms, 2)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if len(ps) != 3 {
		t.Fatalf("got %d probabilities", len(ps))
	}
	for i, p := range ps {
		if p < 0 || p > 1 {
			t.Errorf("probability %d out of range: %v", i, p)
		}
	}

	bad := mkMatrix(t, "d", [][]float32{{1, 2}}, 5, 2)
	if _, err := cl.PredictBatch(cr, []*featmat.Matrix{bad}, 1); err == nil ||
		!strings.Contains(err.Error(), "model wants") {
		t.Fatalf("shape mismatch should fail, got %v", err)
	}
}

func TestTrainSmoke(t *testing.T) {
	cr := anyvec32.CurrentCreator()
	cl, err := New(cr, 4, 3, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var samples anyff.SliceSampleList
	for i := 0; i < 4; i++ {
		in := mkMatrix(t, "s", [][]float32{{float32(i), 1, 0}}, 4, 3).Vector(cr)
		label := float64(i % 2)
		out := cr.MakeVectorData(cr.MakeNumericList([]float64{label}))
		samples = append(samples, &anyff.Sample{Input: in, Output: out})
	}

	cfg := TrainConfig{BatchSize: 2, Iters: 2, Quiet: true}
	if err := cl.Train(cfg, samples, nil); err != nil {
		t.Fatalf("train: %v", err)
	}

	if err := cl.Train(cfg, anyff.SliceSampleList{}, nil); err == nil {
		t.Fatal("empty sample list must fail")
	}
}

// internal/evalstats/evalstats.go

// Package evalstats scores binary hemolytic predictions against labels.
package evalstats

import (
	"fmt"
	"math"
)

// TSVHeader is the column header for metric rows (single source of truth).
const TSVHeader = "set\trecords\ttp\tfp\ttn\tfn\taccuracy\tprecision\trecall\tf1\tmcc"

// Classify turns a probability into a 0/1 call at the given threshold.
func Classify(prob, threshold float64) int {
	if prob >= threshold {
		return 1
	}
	return 0
}

// Confusion tallies binary predictions. Label and prediction are 0 or 1,
// with 1 meaning hemolytic.
type Confusion struct {
	TP int
	FP int
	TN int
	FN int
}

// Add records one prediction against its label.
func (c *Confusion) Add(pred, label int) {
	switch {
	case pred == 1 && label == 1:
		c.TP++
	case pred == 1 && label == 0:
		c.FP++
	case pred == 0 && label == 0:
		c.TN++
	default:
		c.FN++
	}
}

// Total is the number of scored records.
func (c *Confusion) Total() int {
	return c.TP + c.FP + c.TN + c.FN
}

// Accuracy is the fraction of correct calls, or 0 for an empty tally.
func (c *Confusion) Accuracy() float64 {
	n := c.Total()
	if n == 0 {
		return 0
	}
	return float64(c.TP+c.TN) / float64(n)
}

// Precision is TP/(TP+FP), or 0 when nothing was called positive.
func (c *Confusion) Precision() float64 {
	if c.TP+c.FP == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FP)
}

// Recall is TP/(TP+FN), or 0 when no positives exist.
func (c *Confusion) Recall() float64 {
	if c.TP+c.FN == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FN)
}

// F1 is the harmonic mean of precision and recall.
func (c *Confusion) F1() float64 {
	p, r := c.Precision(), c.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// MCC is the Matthews correlation coefficient, or 0 when any marginal
// is empty. Factors convert to float64 before multiplying so large
// tallies cannot overflow int.
func (c *Confusion) MCC() float64 {
	tp, fp, tn, fn := float64(c.TP), float64(c.FP), float64(c.TN), float64(c.FN)
	den := (tp + fp) * (tp + fn) * (tn + fp) * (tn + fn)
	if den == 0 {
		return 0
	}
	return (tp*tn - fp*fn) / math.Sqrt(den)
}

// Report is the serializable form of a scored set.
type Report struct {
	Set       string  `json:"set,omitempty"`
	Records   int     `json:"records"`
	TP        int     `json:"tp"`
	FP        int     `json:"fp"`
	TN        int     `json:"tn"`
	FN        int     `json:"fn"`
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	MCC       float64 `json:"mcc"`
}

// Report snapshots the tally under a set name ("train", "test", or ""
// for the whole dataset).
func (c *Confusion) Report(set string) Report {
	return Report{
		Set:       set,
		Records:   c.Total(),
		TP:        c.TP,
		FP:        c.FP,
		TN:        c.TN,
		FN:        c.FN,
		Accuracy:  c.Accuracy(),
		Precision: c.Precision(),
		Recall:    c.Recall(),
		F1:        c.F1(),
		MCC:       c.MCC(),
	}
}

// FormatReportTSV renders one metric row under TSVHeader.
func FormatReportTSV(r Report) string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%d\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f",
		r.Set, r.Records, r.TP, r.FP, r.TN, r.FN,
		r.Accuracy, r.Precision, r.Recall, r.F1, r.MCC)
}

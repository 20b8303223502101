// internal/model/train.go
package model

import (
	"errors"
	"log"

	"github.com/unixpickle/anynet"
	"github.com/unixpickle/anynet/anyff"
	"github.com/unixpickle/anynet/anysgd"
)

// TrainConfig controls one training run.
type TrainConfig struct {
	// BatchSize is the mini-batch size (default DefaultBatchSize).
	BatchSize int

	// Rate is the Adam step size (default 0.001).
	Rate float64

	// Iters bounds the number of batches; 0 trains until stop fires.
	Iters int

	// Quiet suppresses the per-iteration cost log.
	Quiet bool
}

// Train runs Adam over the samples until stop closes or Iters batches
// have been fetched. A nil stop channel trains on Iters alone.
func (c *Classifier) Train(cfg TrainConfig, samples anyff.SampleList, stop <-chan struct{}) error {
	if samples.Len() == 0 {
		return errors.New("no training samples")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 0.001
	}

	t := &anyff.Trainer{
		Net:     c.Net,
		Cost:    anynet.SigmoidCE{Average: true},
		Params:  c.Net.Parameters(),
		Average: true,
	}

	var iterNum int
	done := make(chan struct{})
	s := &anysgd.SGD{
		Fetcher:     t,
		Gradienter:  t,
		Transformer: &anysgd.Adam{},
		Samples:     samples,
		Rater:       anysgd.ConstRater(cfg.Rate),
		StatusFunc: func(b anysgd.Batch) {
			if cfg.Iters > 0 && iterNum >= cfg.Iters {
				select {
				case <-done:
				default:
					close(done)
				}
				return
			}
			if !cfg.Quiet {
				log.Printf("iter %d: cost=%v", iterNum, t.LastCost)
			}
			iterNum++
		},
		BatchSize: cfg.BatchSize,
	}

	stopCh := stop
	if cfg.Iters > 0 {
		stopCh = mergeStop(stop, done)
	}
	s.Run(stopCh)
	return nil
}

// mergeStop closes its result when either input fires; a nil input
// never fires.
func mergeStop(a, b <-chan struct{}) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		select {
		case <-a:
		case <-b:
		}
		close(out)
	}()
	return out
}

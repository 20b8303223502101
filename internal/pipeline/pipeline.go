// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"pepvec-core/errlist"
	"pepvec-core/peptide"
)

// Config controls the record pipeline.
type Config struct {
	Threads int // number of worker goroutines (0 = all CPUs)
}

// ForEachRecord fans records out to a worker pool, applies fn to each, and
// returns the outputs in input order. A failing record never aborts the
// batch: its error is collected into the returned list while the remaining
// records keep flowing, so one pass reports every failure in the input.
// Output slots whose record failed hold T's zero value.
//
// The error return is reserved for cancellation.
func ForEachRecord[T any](
	ctx context.Context,
	cfg Config,
	recs []peptide.Record,
	fn func(i int, rec peptide.Record) (T, error),
) ([]T, *errlist.List, error) {
	threads := cfg.Threads
	if threads < 1 {
		threads = runtime.GOMAXPROCS(0)
	}
	if len(recs) > 0 && threads > len(recs) {
		threads = len(recs)
	}

	// Workers own disjoint slots, so no collector goroutine is needed and
	// input order survives for free.
	out := make([]T, len(recs))
	perRec := make([]error, len(recs))

	jobs := make(chan int, threads*2)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					v, err := fn(i, recs[i])
					if err != nil {
						perRec[i] = err
						continue
					}
					out[i] = v
				}
			}
		}()
	}

	// Feed work
feed:
	for i := range recs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var errs errlist.List
	for _, err := range perRec {
		errs.Add(err)
	}
	return out, &errs, nil
}

package cmdutil

import (
	"context"

	"pepvec-core/errlist"
	"pepvec-core/peptide"

	"pepvec/internal/pipeline"
)

// RunRecords runs the shared record pipeline, applies a per-record visitor,
// and streams kept outputs to send in input order. It returns the number of
// outputs sent, the collected per-record failures, and the first
// infrastructure error (cancellation or a send failure).
func RunRecords[T any](
	ctx context.Context,
	cfg pipeline.Config,
	recs []peptide.Record,
	visit func(i int, rec peptide.Record) (T, error),
	send func(T) error,
) (int, *errlist.List, error) {
	out, errs, err := pipeline.ForEachRecord(ctx, cfg, recs, func(i int, rec peptide.Record) (*T, error) {
		v, vErr := visit(i, rec)
		if vErr != nil {
			return nil, vErr
		}
		return &v, nil
	})
	if err != nil {
		return 0, nil, err
	}
	total := 0
	for _, v := range out {
		if v == nil {
			continue // record failed; already in errs
		}
		if sErr := send(*v); sErr != nil {
			return total, errs, sErr
		}
		total++
	}
	return total, errs, nil
}

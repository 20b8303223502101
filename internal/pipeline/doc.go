// Package pipeline fans peptide records out to a worker pool and collects
// per-record outputs back in input order.
//
// The only contract to implement is the per-record callback, which keeps
// the pipeline swappable and testable. Record failures accumulate in an
// errlist.List instead of aborting the batch.
package pipeline

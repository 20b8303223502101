// Package writers turns assembled records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (summary tables, JSON/JSONL,
//     the binary dataset archive, sentence corpora).
//   - Core stays domain-only; Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers

// Package text provides line-level text repair for structure recovery:
// Unicode normalization of raw extracted lines, rejection of degenerate
// lines, and reassembly of logical lines from fragments that a naive
// extraction broke apart.
//
// The two entry points mirror the first two pipeline stages:
//
//   - [Normalizer] repairs and filters individual raw lines
//   - [FragmentMerger] joins incomplete continuations into logical lines
//
// Both are pure over their inputs and keep no state between documents.
package text

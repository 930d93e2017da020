// Package model provides the intermediate representation (IR) for recovered
// document structure.
//
// This package defines the user-facing data structures produced by the
// structure-recovery pipeline. All processing stages ultimately produce these
// types, making them the primary API for consuming results.
//
// # Line Lifecycle
//
// Text flows through a fixed sequence of representations:
//
//   - raw lines - plain strings as produced by a page source, in
//     extraction order
//   - [LogicalLine] - one semantically complete line, possibly assembled from
//     several raw lines by the fragment merger
//   - [ScoredLine] - a logical line annotated with a synthesized emphasis score
//   - [HeadingCandidate] - a scored line that classified as a heading, with
//     level and confidence, prior to deduplication
//   - [OutlineEntry] - a final outline item after reduction
//
// # Summary
//
// The [Summary] type is the terminal result for one document: the selected
// title, the bounded outline, and, when available, document metadata, key
// phrases, and extracted entity fields. Its JSON form matches the output
// contract of the batch tool:
//
//	{
//	  "title": "...",
//	  "outline": [{"title": "...", "level": 1, "page": 0}, ...],
//	  "metadata": {"total_pages": 4, "estimated_word_count": 1250, "language": "en"},
//	  "key_phrases": ["..."],
//	  "important_fields": {"emails": ["..."]}
//	}
//
// Page numbers are 0-based throughout.
package model

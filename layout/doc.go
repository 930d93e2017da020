// Package layout infers document structure from logical text lines: it
// synthesizes an emphasis score per line (a proxy for font size, since no
// real metrics are available), classifies lines as headings with a level
// and confidence, reduces candidates into a bounded outline, and selects
// the document title.
//
// Classification fuses three independent signals with strict priority:
// pattern, then synthesized size, then lexical content. The first signal
// that yields a level wins; signals are never averaged or voted.
//
// All components are deterministic pure functions over their inputs, so
// classifying the same lines twice yields identical results.
package layout

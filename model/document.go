package model

import "strings"

// Emphasis score bounds. Synthesized scores are always clamped to this range,
// mirroring the point sizes of common body and display text.
const (
	MinEmphasis = 8.0
	MaxEmphasis = 18.0
)

// MaxOutlineEntries bounds the length of a reduced outline.
const MaxOutlineEntries = 25

// ErrorTitle is the sentinel title reported when a document's page source
// cannot produce any content.
const ErrorTitle = "Error: Could not process PDF"

// UntitledDocument is the fallback title when no candidate qualifies.
const UntitledDocument = "Untitled Document"

// LogicalLine is one semantically complete line after fragment merging,
// possibly assembled from several raw lines. Merging never spans pages, so
// Page is the page of every constituent raw line.
type LogicalLine struct {
	Text string
	Page int
}

// ScoredLine annotates a logical line with a synthesized emphasis score, a
// numeric proxy for font size derived purely from text features. The score
// is always within [MinEmphasis, MaxEmphasis].
type ScoredLine struct {
	LogicalLine
	Emphasis float64
}

// HeadingCandidate is a scored line that classified as a heading, prior to
// outline reduction.
type HeadingCandidate struct {
	// Title is the cleaned heading text.
	Title string

	// Level is the heading level, 1-3.
	Level int

	// Page is the 0-based page the heading appears on.
	Page int

	// Confidence is a detection confidence score in [0,1].
	Confidence float64

	// RawText is the logical line text before cleanup.
	RawText string
}

// OutlineEntry is one item of the final, reduced outline.
type OutlineEntry struct {
	Title string `json:"title"`
	Level int    `json:"level"`
	Page  int    `json:"page"`
}

// Metadata holds document-level statistics.
type Metadata struct {
	TotalPages         int    `json:"total_pages"`
	EstimatedWordCount int    `json:"estimated_word_count"`
	Language           string `json:"language"`
}

// Fields holds entities extracted by the auxiliary pattern extractor.
// Each category is a deduplicated list; empty categories are omitted from
// serialized output.
type Fields struct {
	Emails     []string `json:"emails,omitempty"`
	Phones     []string `json:"phones,omitempty"`
	Dates      []string `json:"dates,omitempty"`
	URLs       []string `json:"urls,omitempty"`
	Versions   []string `json:"versions,omitempty"`
	Copyrights []string `json:"copyrights,omitempty"`
	Addresses  []string `json:"addresses,omitempty"`
	Prices     []string `json:"prices,omitempty"`
	IDNumbers  []string `json:"id_numbers,omitempty"`
	References []string `json:"references,omitempty"`
}

// IsEmpty reports whether no category matched anything.
func (f *Fields) IsEmpty() bool {
	if f == nil {
		return true
	}
	return len(f.Emails) == 0 && len(f.Phones) == 0 && len(f.Dates) == 0 &&
		len(f.URLs) == 0 && len(f.Versions) == 0 && len(f.Copyrights) == 0 &&
		len(f.Addresses) == 0 && len(f.Prices) == 0 && len(f.IDNumbers) == 0 &&
		len(f.References) == 0
}

// Summary is the terminal result for one document.
//
// Metadata, KeyPhrases and Fields are omitted from JSON when absent; a
// degraded (sentinel) summary carries only Title and an empty Outline.
type Summary struct {
	Title      string         `json:"title"`
	Outline    []OutlineEntry `json:"outline"`
	Metadata   *Metadata      `json:"metadata,omitempty"`
	KeyPhrases []string       `json:"key_phrases,omitempty"`
	Fields     *Fields        `json:"important_fields,omitempty"`
}

// ErrorSummary returns the sentinel summary reported when a page source
// fails or produces zero pages. The outline is empty but non-nil so it
// serializes as [] rather than null.
func ErrorSummary() *Summary {
	return &Summary{
		Title:   ErrorTitle,
		Outline: []OutlineEntry{},
	}
}

// IsError reports whether the summary is a degraded error summary.
func (s *Summary) IsError() bool {
	if s == nil {
		return true
	}
	return strings.HasPrefix(s.Title, "Error")
}

// HeadingsAtLevel returns the outline entries at the given level.
func (s *Summary) HeadingsAtLevel(level int) []OutlineEntry {
	if s == nil {
		return nil
	}
	var result []OutlineEntry
	for _, e := range s.Outline {
		if e.Level == level {
			result = append(result, e)
		}
	}
	return result
}

// TableOfContents returns a plain-text table of contents, one entry per
// line, indented two spaces per level.
func (s *Summary) TableOfContents() string {
	if s == nil || len(s.Outline) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, e := range s.Outline {
		sb.WriteString(strings.Repeat("  ", e.Level-1))
		sb.WriteString(e.Title)
		sb.WriteString("\n")
	}
	return sb.String()
}

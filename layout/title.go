package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// TitleConfig holds configuration for title selection.
type TitleConfig struct {
	// MaxLines is how many lines of the first page are examined.
	// Default: 10.
	MaxLines int

	// EmphasisThreshold is the global title threshold; a line meeting it
	// is always a candidate. Default: 16.
	EmphasisThreshold float64

	// StopWords are lines skipped outright (case-insensitive).
	StopWords map[string]bool
}

// DefaultTitleConfig returns the default title selection configuration.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MaxLines:          10,
		EmphasisThreshold: 16,
		StopWords: map[string]bool{
			"page": true, "of": true, "the": true, "and": true,
		},
	}
}

// TitleSelector picks the document title from the first page's scored
// lines.
type TitleSelector struct {
	config TitleConfig
}

// NewTitleSelector creates a selector with default configuration.
func NewTitleSelector() *TitleSelector {
	return &TitleSelector{config: DefaultTitleConfig()}
}

// NewTitleSelectorWithConfig creates a selector with custom configuration.
func NewTitleSelectorWithConfig(config TitleConfig) *TitleSelector {
	return &TitleSelector{config: config}
}

// SelectTitle examines at most the first MaxLines lines of page 0 and
// returns the candidate with the highest emphasis score, ties broken by
// first occurrence. A line qualifies as a candidate when its emphasis
// meets the title threshold, or when no candidate has been chosen yet.
// Returns "Untitled Document" when nothing qualifies.
func (t *TitleSelector) SelectTitle(lines []model.ScoredLine) string {
	examined := 0
	var best string
	bestScore := -1.0
	haveCandidate := false

	for _, line := range lines {
		if line.Page != 0 {
			continue
		}
		if examined >= t.config.MaxLines {
			break
		}
		examined++

		text := strings.TrimSpace(line.Text)
		if utf8.RuneCountInString(text) < 3 {
			continue
		}
		if t.config.StopWords[strings.ToLower(text)] {
			continue
		}

		if line.Emphasis >= t.config.EmphasisThreshold || !haveCandidate {
			haveCandidate = true
			if line.Emphasis > bestScore {
				bestScore = line.Emphasis
				best = text
			}
		}
	}

	if !haveCandidate {
		return model.UntitledDocument
	}
	return best
}

package layout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/text"
)

// ScorerConfig holds configuration for emphasis scoring.
type ScorerConfig struct {
	// Base is the starting score before adjustments. Default: 10.
	Base float64

	// StructuralKeywords are section-boundary cues whose presence raises a
	// line's score regardless of formatting.
	StructuralKeywords []string
}

// DefaultScorerConfig returns the default scoring configuration.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		Base: 10,
		StructuralKeywords: []string{
			"introduction", "conclusion", "summary", "overview",
			"background", "methodology", "results", "discussion",
			"references", "appendix", "chapter", "section", "part",
			"abstract", "acknowledgments",
		},
	}
}

var (
	leadingNumbering  = regexp.MustCompile(`^\d+(?:\.\d+)*\.?\s`)
	leadingStructural = regexp.MustCompile(`(?i)^(chapter|section|part|appendix)\b`)
	leadingBullet     = regexp.MustCompile(`^[\x{2022}\x{25AA}\x{25AB}\x{25E6}\x{2023}*\-\x{00B7}]\s`)
)

// cjkSectionMarkers are ideographs that prefix or suffix CJK section
// headings (chapter, section, part, ordinal prefix).
const cjkSectionMarkers = "章節节部篇第"

// cjkBracketPairs are quotation/title brackets that wrap CJK headings.
var cjkBracketPairs = [][2]rune{
	{'「', '」'}, // 「」
	{'『', '』'}, // 『』
	{'【', '】'}, // 【】
}

// Scorer assigns each logical line a synthetic emphasis score in
// [model.MinEmphasis, model.MaxEmphasis], purely from textual features.
// The score stands in for font size, which is never available to this
// pipeline. Scoring is per-line; relative thresholds are computed later by
// the classifier.
type Scorer struct {
	config ScorerConfig
}

// NewScorer creates a scorer with default configuration.
func NewScorer() *Scorer {
	return &Scorer{config: DefaultScorerConfig()}
}

// NewScorerWithConfig creates a scorer with custom configuration.
func NewScorerWithConfig(config ScorerConfig) *Scorer {
	return &Scorer{config: config}
}

// Score computes the emphasis score for one line of text.
func (s *Scorer) Score(line string) float64 {
	score := s.config.Base
	line = strings.TrimSpace(line)
	length := utf8.RuneCountInString(line)

	// Length bands: headings are short, body text runs long.
	switch {
	case length <= 25:
		score += 2
	case length <= 50:
		score += 1
	case length > 100:
		score -= 1
	}
	if length > 150 {
		score -= 2
	}

	if isAllCaps(line) && length < 50 {
		score += 4
	}
	if leadingNumbering.MatchString(line) {
		score += 3
	}
	if majorityTitleCased(line) {
		score += 2
	}
	if s.hasStructuralKeyword(line) {
		score += 2
	}
	if leadingStructural.MatchString(line) {
		score += 3
	}
	if leadingBullet.MatchString(line) {
		score += 1
	}

	if strings.ContainsAny(line, cjkSectionMarkers) {
		score += 3
	} else if wrappedInCJKBrackets(line) {
		score += 2
	}

	if punctuationDensity(line) > 0.10 {
		score -= 1
	}

	return clampEmphasis(score)
}

// ScoreAll annotates logical lines with their emphasis scores.
func (s *Scorer) ScoreAll(lines []model.LogicalLine) []model.ScoredLine {
	result := make([]model.ScoredLine, len(lines))
	for i, line := range lines {
		result[i] = model.ScoredLine{
			LogicalLine: line,
			Emphasis:    s.Score(line.Text),
		}
	}
	return result
}

func (s *Scorer) hasStructuralKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range s.config.StructuralKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func clampEmphasis(score float64) float64 {
	if score < model.MinEmphasis {
		return model.MinEmphasis
	}
	if score > model.MaxEmphasis {
		return model.MaxEmphasis
	}
	return score
}

// isAllCaps reports whether the line's cased letters are all uppercase.
// Uncased scripts (CJK) never count as all-caps, and at least three cased
// letters are required.
func isAllCaps(line string) bool {
	upper, lower := 0, 0
	for _, r := range line {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	return upper >= 3 && lower == 0
}

// majorityTitleCased reports whether more than half of the words start
// with an uppercase letter followed by lowercase.
func majorityTitleCased(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	titled := 0
	for _, w := range words {
		runes := []rune(w)
		if len(runes) >= 2 && unicode.IsUpper(runes[0]) && unicode.IsLower(runes[1]) {
			titled++
		}
	}
	return titled*2 > len(words)
}

// punctuationDensity returns the share of punctuation and symbol runes.
func punctuationDensity(line string) float64 {
	total := 0
	punct := 0
	for _, r := range line {
		total++
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			punct++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(punct) / float64(total)
}

// wrappedInCJKBrackets reports whether the line is enclosed in a CJK
// quotation/title bracket pair.
func wrappedInCJKBrackets(line string) bool {
	runes := []rune(line)
	if len(runes) < 2 {
		return false
	}
	for _, pair := range cjkBracketPairs {
		if runes[0] == pair[0] && runes[len(runes)-1] == pair[1] {
			return true
		}
	}
	return false
}

// hasCJKSectionMarker is a helper for classifier patterns.
func hasCJKSectionMarker(line string) bool {
	return strings.ContainsAny(line, cjkSectionMarkers)
}

// stripCJKBrackets removes one wrapping CJK bracket pair, if present.
func stripCJKBrackets(line string) string {
	runes := []rune(line)
	if len(runes) < 2 {
		return line
	}
	for _, pair := range cjkBracketPairs {
		if runes[0] == pair[0] && runes[len(runes)-1] == pair[1] {
			return string(runes[1 : len(runes)-1])
		}
	}
	return line
}

// containsCJK re-exports script detection for classifier use.
func containsCJK(line string) bool {
	return text.ContainsCJK(line)
}

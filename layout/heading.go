package layout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// Thresholds holds the per-document emphasis cutoffs for heading levels.
// They always satisfy H1 >= H2 >= H3.
type Thresholds struct {
	H1, H2, H3 float64
}

// Fallback thresholds used when a document yields no emphasis scores.
var fallbackThresholds = Thresholds{H1: 14, H2: 12, H3: 11}

// CalculateThresholds derives dynamic heading thresholds from the emphasis
// scores actually observed in a document: the largest distinct score maps
// to H1, the second to H2, the third to H3. Missing ranks fall back to one
// point under the rank above.
func CalculateThresholds(scores []float64) Thresholds {
	distinct := distinctDescending(scores)
	if len(distinct) == 0 {
		return fallbackThresholds
	}

	t := Thresholds{H1: distinct[0]}
	if len(distinct) > 1 {
		t.H2 = distinct[1]
	} else {
		t.H2 = t.H1 - 1
	}
	if len(distinct) > 2 {
		t.H3 = distinct[2]
	} else {
		t.H3 = t.H2 - 1
	}
	return t
}

func distinctDescending(scores []float64) []float64 {
	seen := make(map[float64]struct{}, len(scores))
	distinct := make([]float64, 0, len(scores))
	for _, s := range scores {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			distinct = append(distinct, s)
		}
	}
	// Insertion sort descending; the distinct set is small (scores are
	// bounded to [8,18] in half-point-ish steps).
	for i := 1; i < len(distinct); i++ {
		for j := i; j > 0 && distinct[j] > distinct[j-1]; j-- {
			distinct[j], distinct[j-1] = distinct[j-1], distinct[j]
		}
	}
	return distinct
}

// ClassifierConfig holds the pattern tables and keyword sets used by the
// heading classifier. Constructed once, never mutated.
type ClassifierConfig struct {
	// Level1Patterns through Level3Patterns are ordered; within the chain
	// the first matching pattern at the lowest level number wins.
	Level1Patterns []*regexp.Regexp
	Level2Patterns []*regexp.Regexp
	Level3Patterns []*regexp.Regexp

	// MajorKeywords map to level 1 in the content classifier,
	// MinorKeywords to level 2.
	MajorKeywords []string
	MinorKeywords []string
}

// DefaultClassifierConfig returns the default pattern tables.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Level1Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(chapter|part)\s+\d+`),
			regexp.MustCompile(`^\d+\.\s+\p{Lu}`),
			regexp.MustCompile(`^\p{Lu}[\p{Lu}\s]{4,}$`),
			regexp.MustCompile(`(?i)^(introduction|conclusion|summary|overview|background|references|abstract|acknowledgments|appendix)\s*$`),
		},
		Level2Patterns: []*regexp.Regexp{
			regexp.MustCompile(`^\d+\.\d+\.?\s`),
			regexp.MustCompile(`^(?:\p{Lu}[\p{Ll}]+)(?:\s+(?:\p{Lu}[\p{Ll}]+|of|the|and|in|for|to|a|an))+$`),
			regexp.MustCompile(`(?i)^(section|subsection)\s+\d+`),
		},
		Level3Patterns: []*regexp.Regexp{
			regexp.MustCompile(`^\d+\.\d+\.\d+`),
			regexp.MustCompile(`^[a-z]\)\s`),
			regexp.MustCompile(`^[\x{2022}\x{25AA}\x{25AB}\x{25E6}\x{2023}\-]\s*\p{Lu}`),
		},
		MajorKeywords: []string{
			"introduction", "conclusion", "summary", "overview",
			"abstract", "references", "chapter", "appendix", "background",
		},
		MinorKeywords: []string{
			"methodology", "results", "discussion", "section",
			"acknowledgments", "related work", "future work",
		},
	}
}

// Classifier turns scored lines into heading candidates by fusing three
// independent signals with strict priority: pattern, then synthesized
// size, then lexical content. The first signal yielding a level wins.
type Classifier struct {
	config ClassifierConfig
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultClassifierConfig()}
}

// NewClassifierWithConfig creates a classifier with custom configuration.
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	return &Classifier{config: config}
}

// Classify computes dynamic thresholds over the whole document, then
// classifies each line. Lines shorter than 3 runes, lines failing all
// three signals, and lines whose cleaned title is degenerate are dropped.
func (c *Classifier) Classify(lines []model.ScoredLine) []model.HeadingCandidate {
	scores := make([]float64, len(lines))
	for i, l := range lines {
		scores[i] = l.Emphasis
	}
	thresholds := CalculateThresholds(scores)

	candidates := make([]model.HeadingCandidate, 0)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line.Text)
		if utf8.RuneCountInString(trimmed) < 3 {
			continue
		}

		level := c.patternLevel(trimmed)
		if level == 0 {
			level = sizeLevel(line.Emphasis, thresholds)
		}
		if level == 0 {
			level = c.contentLevel(trimmed)
		}
		if level == 0 {
			continue
		}

		title := CleanTitle(trimmed)
		titleLen := utf8.RuneCountInString(title)
		if titleLen < 2 || titleLen > 200 {
			continue
		}

		candidates = append(candidates, model.HeadingCandidate{
			Title:      title,
			Level:      level,
			Page:       line.Page,
			Confidence: confidence(trimmed, line.Emphasis, thresholds),
			RawText:    line.Text,
		})
	}
	return candidates
}

// patternLevel checks the ordered pattern tables; the lowest level number
// with a match wins.
func (c *Classifier) patternLevel(line string) int {
	for _, p := range c.config.Level1Patterns {
		if p.MatchString(line) {
			return 1
		}
	}
	if hasCJKSectionMarker(line) && utf8.RuneCountInString(line) < 30 {
		return 1
	}
	for _, p := range c.config.Level2Patterns {
		if p.MatchString(line) {
			return 2
		}
	}
	for _, p := range c.config.Level3Patterns {
		if p.MatchString(line) {
			return 3
		}
	}
	return 0
}

// sizeLevel compares the emphasis score against the dynamic thresholds,
// assigning the highest tier met.
func sizeLevel(emphasis float64, t Thresholds) int {
	switch {
	case emphasis >= t.H1:
		return 1
	case emphasis >= t.H2:
		return 2
	case emphasis >= t.H3:
		return 3
	default:
		return 0
	}
}

// contentLevel is the lexical fallback: major keyword, minor keyword, then
// short capitalized line.
func (c *Classifier) contentLevel(line string) int {
	lower := strings.ToLower(line)
	for _, kw := range c.config.MajorKeywords {
		if strings.Contains(lower, kw) {
			return 1
		}
	}
	for _, kw := range c.config.MinorKeywords {
		if strings.Contains(lower, kw) {
			return 2
		}
	}
	r, _ := utf8.DecodeRuneInString(line)
	if utf8.RuneCountInString(line) < 50 && unicode.IsUpper(r) {
		return 3
	}
	return 0
}

// confidence scores a classified line. Base 0.5, plus the size-threshold
// tier met, plus shortness, plus pattern bonuses; capped at 1.
func confidence(line string, emphasis float64, t Thresholds) float64 {
	conf := 0.5

	switch {
	case emphasis >= t.H1:
		conf += 0.3
	case emphasis >= t.H2:
		conf += 0.2
	case emphasis >= t.H3:
		conf += 0.1
	}

	length := utf8.RuneCountInString(line)
	if length < 30 {
		conf += 0.2
	} else if length < 60 {
		conf += 0.1
	}

	if leadingNumbering.MatchString(line) {
		conf += 0.2
	}
	if isAllCaps(line) && length < 50 {
		conf += 0.3
	}

	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

var (
	numberedHeadingKeep = regexp.MustCompile(`^\d+(?:\.\d+)*\.?\s+\p{Lu}`)
	ordinalPrefix       = regexp.MustCompile(`^\d+(?:\.\d+)*\.?\s*`)
	bulletPrefix        = regexp.MustCompile(`^[\x{2022}\x{25AA}\x{25AB}\x{25E6}\x{2023}]\s*`)
	punctRun            = regexp.MustCompile(`\.{3,}|-{3,}|\x{2014}{3,}|_{3,}|={3,}|\*{3,}`)
	decorative          = regexp.MustCompile(`[^\p{L}\p{N}\s\-.,;:()\[\]'"&/!?@#%+]`)
)

// CleanTitle normalizes a classified line into a heading title: wrapping
// CJK brackets and decorative characters are stripped, leader runs are
// collapsed, and the ordinal prefix is dropped unless it introduces a
// clearly-numbered heading (numbering followed by a capitalized word).
func CleanTitle(line string) string {
	s := strings.TrimSpace(line)
	s = stripCJKBrackets(s)
	s = bulletPrefix.ReplaceAllString(s, "")

	if !numberedHeadingKeep.MatchString(s) {
		s = ordinalPrefix.ReplaceAllString(s, "")
	}

	s = punctRun.ReplaceAllString(s, "")
	if !containsCJK(s) {
		s = decorative.ReplaceAllString(s, "")
	}
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimRight(s, " .,:;·-")

	return strings.TrimSpace(s)
}

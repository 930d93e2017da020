package text

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Boundary patterns for de-globbing: extraction artifacts where adjacent
// tokens were concatenated without whitespace.
var (
	lowerUpperBoundary  = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)
	digitLetterBoundary = regexp.MustCompile(`(\d)(\p{L})`)
	letterDigitBoundary = regexp.MustCompile(`(\p{L})(\d)`)

	symbolOnlyLine = regexp.MustCompile(`^[^\p{L}\p{N}\s]+$`)
)

// Normalizer repairs individual raw lines: it applies Unicode
// canonical-compatibility (NFKC) normalization, re-inserts spaces lost at
// token boundaries, and filters degenerate lines that carry no usable
// content.
type Normalizer struct{}

// NewNormalizer creates a line normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize repairs raw. The second return value is false when the line is
// degenerate and must be dropped entirely; rejection is signaled by
// omission, never by an error.
func (n *Normalizer) Normalize(raw string) (string, bool) {
	s := norm.NFKC.String(raw)

	// Patch run-together words: lower→upper, digit→letter, letter→digit.
	s = lowerUpperBoundary.ReplaceAllString(s, "$1 $2")
	s = digitLetterBoundary.ReplaceAllString(s, "$1 $2")
	s = letterDigitBoundary.ReplaceAllString(s, "$1 $2")

	s = strings.Join(strings.Fields(s), " ")

	if !n.acceptable(s) {
		return "", false
	}
	return s, true
}

// NormalizeAll normalizes a page worth of raw lines, dropping rejected
// lines and preserving order. Blank lines pass through empty: they are
// paragraph breaks, and the merger uses them as flush signals.
func (n *Normalizer) NormalizeAll(lines []string) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			result = append(result, "")
			continue
		}
		if s, ok := n.Normalize(line); ok {
			result = append(result, s)
		}
	}
	return result
}

// acceptable applies the rejection heuristics to a normalized line.
func (n *Normalizer) acceptable(s string) bool {
	length := utf8.RuneCountInString(s)
	if length < 2 {
		return false
	}

	// Lines of pure symbols are decoration (rules, borders).
	if symbolOnlyLine.MatchString(s) {
		return false
	}

	// Repetition artifact: long line drawn from almost no alphabet.
	if length > 10 && distinctRunes(s) < 3 {
		return false
	}

	// OCR noise: a line shredded into single characters.
	tokens := strings.Fields(s)
	if len(tokens) > 0 {
		single := 0
		for _, tok := range tokens {
			if utf8.RuneCountInString(tok) == 1 {
				single++
			}
		}
		if single*2 > len(tokens) {
			return false
		}
	}

	return true
}

func distinctRunes(s string) int {
	seen := make(map[rune]struct{}, 16)
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}

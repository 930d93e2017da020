package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// MergeConfig holds configuration for fragment merging.
type MergeConfig struct {
	// ShortLineLimit is the length under which a line without terminal
	// punctuation is treated as an incomplete predecessor.
	// Default: 20
	ShortLineLimit int

	// CJKLineLimit is the length under which a CJK line without terminal
	// CJK punctuation attracts the next line.
	// Default: 50
	CJKLineLimit int

	// TrailingConnectors are words that, when last on a line, indicate the
	// sentence continues on the next line.
	TrailingConnectors map[string]bool

	// LeadingConnectors are words that, when first on a line, indicate the
	// line continues the previous one.
	LeadingConnectors map[string]bool

	// StreetSuffixes are street-type tokens used by the address
	// continuation trigger.
	StreetSuffixes map[string]bool

	// UnitTokens are unit/suite tokens used by the address continuation
	// trigger.
	UnitTokens map[string]bool
}

// DefaultMergeConfig returns the default merge configuration.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		ShortLineLimit: 20,
		CJKLineLimit:   50,
		TrailingConnectors: wordSet(
			"and", "or", "but", "with", "for", "to", "of", "in", "on",
			"at", "by", "from", "the", "a", "an",
		),
		LeadingConnectors: wordSet(
			"and", "or", "but", "however", "therefore", "moreover",
			"furthermore", "also", "which", "that", "because",
		),
		StreetSuffixes: wordSet(
			"street", "st", "avenue", "ave", "road", "rd", "drive", "dr",
			"lane", "ln", "boulevard", "blvd", "parkway", "pkwy",
			"court", "ct", "place", "pl",
		),
		UnitTokens: wordSet(
			"suite", "ste", "unit", "apt", "apartment", "floor", "fl",
			"room", "rm", "#",
		),
	}
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var (
	bareNumberLine = regexp.MustCompile(`^\d+$`)
	bareWordLine   = regexp.MustCompile(`^\p{L}+$`)
)

// FragmentMerger joins raw lines that are incomplete continuations of the
// previous line (broken sentences, addresses, multi-script wraps) into
// single logical lines. Each page is processed independently; merging never
// crosses a page boundary.
type FragmentMerger struct {
	config MergeConfig
}

// NewFragmentMerger creates a merger with default configuration.
func NewFragmentMerger() *FragmentMerger {
	return &FragmentMerger{config: DefaultMergeConfig()}
}

// NewFragmentMergerWithConfig creates a merger with custom configuration.
func NewFragmentMergerWithConfig(config MergeConfig) *FragmentMerger {
	return &FragmentMerger{config: config}
}

// Merge processes one page of normalized lines in order and returns the
// logical lines for that page. A blank input line forces a flush without
// merging.
func (m *FragmentMerger) Merge(lines []string, page int) []model.LogicalLine {
	result := make([]model.LogicalLine, 0, len(lines))
	var acc string

	flush := func() {
		if acc != "" {
			result = append(result, model.LogicalLine{Text: acc, Page: page})
			acc = ""
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if acc == "" {
			acc = line
			continue
		}
		if m.shouldMerge(acc, line) {
			acc = m.join(acc, line)
		} else {
			flush()
			acc = line
		}
	}
	flush()

	return result
}

// shouldMerge evaluates the merge triggers in order; any one true means the
// next line joins the accumulator.
func (m *FragmentMerger) shouldMerge(acc, next string) bool {
	return m.incompletePredecessor(acc) ||
		m.continuationSuccessor(next) ||
		m.scriptMerge(acc, next) ||
		m.addressContinuation(acc)
}

// incompletePredecessor reports whether the accumulator looks cut off
// mid-thought.
func (m *FragmentMerger) incompletePredecessor(acc string) bool {
	runes := []rune(acc)
	last := runes[len(runes)-1]

	if last == ',' || last == '、' || last == '，' {
		return true
	}
	if last == '-' {
		return true // word break
	}
	if m.config.TrailingConnectors[lastWord(acc)] {
		return true
	}
	if len(runes) < m.config.ShortLineLimit && !HasTerminalPunct(acc) {
		return true
	}
	return false
}

// continuationSuccessor reports whether the next line reads as a
// continuation of the previous one.
func (m *FragmentMerger) continuationSuccessor(next string) bool {
	r, _ := utf8.DecodeRuneInString(next)
	if unicode.IsLower(r) {
		return true
	}
	return m.config.LeadingConnectors[firstWord(next)]
}

// scriptMerge handles CJK text, where extraction tends to wrap lines at
// arbitrary column widths with no punctuation cue.
func (m *FragmentMerger) scriptMerge(acc, next string) bool {
	if !ContainsCJK(acc) && !ContainsCJK(next) {
		return false
	}
	return !HasCJKTerminal(acc) && utf8.RuneCountInString(acc) < m.config.CJKLineLimit
}

// addressContinuation reports whether the accumulator ends the way a street
// address fragment does.
func (m *FragmentMerger) addressContinuation(acc string) bool {
	if bareNumberLine.MatchString(acc) || bareWordLine.MatchString(acc) {
		return true
	}
	last := lastWord(acc)
	return m.config.StreetSuffixes[last] || m.config.UnitTokens[last]
}

// join combines two merged fragments. A trailing hyphen followed by a
// lowercase continuation is a broken word and is reassembled without the
// hyphen; CJK fragments join directly; everything else joins with a space.
func (m *FragmentMerger) join(acc, next string) string {
	if strings.HasSuffix(acc, "-") {
		if r, _ := utf8.DecodeRuneInString(next); unicode.IsLower(r) {
			return strings.TrimSuffix(acc, "-") + next
		}
	}
	if ContainsCJK(acc) || ContainsCJK(next) {
		return acc + next
	}
	return acc + " " + next
}

// lastWord returns the final whitespace-delimited token of s, lowercased
// and with light trailing punctuation removed.
func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimRight(fields[len(fields)-1], ".,"))
}

// firstWord returns the first whitespace-delimited token of s, lowercased
// and with light trailing punctuation removed.
func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimRight(fields[0], ".,"))
}

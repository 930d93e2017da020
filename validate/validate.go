// Package validate provides optional sanity checks over a recovered
// document summary. The checks warn; they never gate or reject output.
// The outline reducer remains authoritative.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

var (
	leadingNumber = regexp.MustCompile(`^\d+\.`)
	gibberish     = regexp.MustCompile(`[^\p{L}\p{N}\s]{3,}`)
)

// Check inspects a summary and returns human-readable warnings about
// structural quality. An empty slice means no findings.
func Check(s *model.Summary) []string {
	var warnings []string

	if s == nil {
		return []string{"summary is nil"}
	}
	if s.Title == "" || s.Title == model.UntitledDocument {
		warnings = append(warnings, "title is empty or default")
	}
	if len(s.Outline) == 0 {
		warnings = append(warnings, "outline is empty")
		return warnings
	}

	levelCounts := make(map[int]int)
	minLevel, maxLevel := 0, 0

	for i, entry := range s.Outline {
		warnings = append(warnings, checkEntry(i, entry)...)

		levelCounts[entry.Level]++
		if minLevel == 0 || entry.Level < minLevel {
			minLevel = entry.Level
		}
		if entry.Level > maxLevel {
			maxLevel = entry.Level
		}
	}

	// Hierarchy shape checks.
	if levelCounts[1] == 0 {
		warnings = append(warnings, "no level 1 headings found")
	} else if levelCounts[1]*5 > len(s.Outline)*4 {
		warnings = append(warnings, fmt.Sprintf(
			"too many level 1 headings (%d of %d)", levelCounts[1], len(s.Outline)))
	}
	if minLevel > 2 {
		warnings = append(warnings, fmt.Sprintf(
			"no major headings found (minimum level is %d)", minLevel))
	}
	if maxLevel-minLevel > 3 {
		warnings = append(warnings, fmt.Sprintf(
			"heading hierarchy too deep (%d to %d)", minLevel, maxLevel))
	}

	return warnings
}

// checkEntry validates one outline item.
func checkEntry(i int, entry model.OutlineEntry) []string {
	var warnings []string

	title := strings.TrimSpace(entry.Title)
	length := utf8.RuneCountInString(title)

	if length < 2 {
		warnings = append(warnings, fmt.Sprintf("outline item %d: empty or too short title", i))
	} else if length < 10 && !leadingNumber.MatchString(title) {
		warnings = append(warnings, fmt.Sprintf("outline item %d: possibly fragmented title %q", i, title))
	}
	if entry.Level < 1 || entry.Level > 3 {
		warnings = append(warnings, fmt.Sprintf("outline item %d: invalid level %d", i, entry.Level))
	}
	if entry.Page < 0 {
		warnings = append(warnings, fmt.Sprintf("outline item %d: invalid page %d", i, entry.Page))
	}
	if gibberish.MatchString(title) || hasLongRepeat(title) {
		warnings = append(warnings, fmt.Sprintf("outline item %d: possible gibberish or artifacts in %q", i, title))
	}

	return warnings
}

// hasLongRepeat reports whether any rune repeats five or more times in a
// row, a decoration/extraction artifact.
func hasLongRepeat(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= 5 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

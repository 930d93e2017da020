package entities

import (
	"fmt"
	"regexp"

	"github.com/tsawler/outliner/model"
)

// Category patterns. Each matcher is independent; an input is scanned once
// per category.
var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	datePattern  = regexp.MustCompile(`(?i)\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2}|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4})\b`)
	urlPattern   = regexp.MustCompile(`(?:https?://|www\.)[A-Za-z0-9.-]+\.[A-Za-z]{2,}(?:/[^\s]*)?`)
	// The version pattern captures only the number; match lists carry bare
	// version numbers.
	versionPattern   = regexp.MustCompile(`(?i)(?:version|ver|v\.?)\s*(\d+(?:\.\d+)*)`)
	copyrightPattern = regexp.MustCompile(`(?i)©\s*(\d{4}(?:-\d{4})?)|copyright\s*(?:©)?\s*(\d{4}(?:-\d{4})?)`)
	addressPattern   = regexp.MustCompile(`(?i)\d+\s+[A-Za-z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd|Parkway|Pkwy)`)
	pricePattern     = regexp.MustCompile(`\$\s*\d+(?:,\d{3})*(?:\.\d{2})?`)
	idPattern        = regexp.MustCompile(`\b(?:ID|id|Id)[\s:]*([A-Z0-9]{5,})\b`)
	refPattern       = regexp.MustCompile(`(?i)\b(?:Ref|Reference)[\s:]*([A-Z0-9-]{3,})\b`)
)

// Extractor applies the category matchers to document text.
type Extractor struct{}

// NewExtractor creates an entity extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scans text across all ten categories and returns the deduplicated
// matches. Returns nil when no category matched anything, so callers can
// omit the field from serialized output entirely.
func (e *Extractor) Extract(text string) *model.Fields {
	fields := &model.Fields{
		Emails:     dedupe(emailPattern.FindAllString(text, -1)),
		Phones:     extractPhones(text),
		Dates:      dedupe(datePattern.FindAllString(text, -1)),
		URLs:       dedupe(urlPattern.FindAllString(text, -1)),
		Versions:   dedupe(captureGroup(versionPattern, text, 1)),
		Copyrights: extractCopyrights(text),
		Addresses:  dedupe(addressPattern.FindAllString(text, -1)),
		Prices:     dedupe(pricePattern.FindAllString(text, -1)),
		IDNumbers:  dedupe(captureGroup(idPattern, text, 1)),
		References: dedupe(captureGroup(refPattern, text, 1)),
	}

	if fields.IsEmpty() {
		return nil
	}
	return fields
}

// extractPhones matches phone numbers and reformats each as
// "(AAA) BBB-CCCC".
func extractPhones(text string) []string {
	matches := phonePattern.FindAllStringSubmatch(text, -1)
	phones := make([]string, 0, len(matches))
	for _, m := range matches {
		phones = append(phones, fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3]))
	}
	return dedupe(phones)
}

// extractCopyrights collapses the two alternative capturing groups of the
// copyright pattern into a single year value per match.
func extractCopyrights(text string) []string {
	matches := copyrightPattern.FindAllStringSubmatch(text, -1)
	years := make([]string, 0, len(matches))
	for _, m := range matches {
		year := m[1]
		if year == "" {
			year = m[2]
		}
		if year != "" {
			years = append(years, year)
		}
	}
	return dedupe(years)
}

// captureGroup returns the given capture group of every match.
func captureGroup(p *regexp.Regexp, text string, group int) []string {
	matches := p.FindAllStringSubmatch(text, -1)
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		if m[group] != "" {
			result = append(result, m[group])
		}
	}
	return result
}

// dedupe removes duplicates preserving first-occurrence order. Empty input
// yields nil so empty categories serialize as absent.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

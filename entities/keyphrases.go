package entities

import "regexp"

// Key phrase extraction limits.
const (
	maxImportantPhrases = 10
	maxTechnicalTerms   = 5
	maxKeyPhrases       = 15
)

var (
	// Capitalized multi-word runs ("Machine Learning Pipeline").
	importantPhrase = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3}\b`)

	// Technical terms: alphanumeric mixes ("IPv6", "SHA256") and acronyms.
	technicalTerm = regexp.MustCompile(`\b[A-Za-z]+[0-9]+[A-Za-z0-9]*\b|\b[A-Z]{2,}\b`)
)

// KeyPhrases extracts up to 15 key phrases from document text: capitalized
// multi-word terms first, then technical terms, deduplicated preserving
// first occurrence.
func KeyPhrases(text string) []string {
	phrases := make([]string, 0, maxKeyPhrases)

	important := importantPhrase.FindAllString(text, -1)
	if len(important) > maxImportantPhrases {
		important = important[:maxImportantPhrases]
	}
	phrases = append(phrases, important...)

	technical := technicalTerm.FindAllString(text, -1)
	if len(technical) > maxTechnicalTerms {
		technical = technical[:maxTechnicalTerms]
	}
	phrases = append(phrases, technical...)

	phrases = dedupe(phrases)
	if len(phrases) > maxKeyPhrases {
		phrases = phrases[:maxKeyPhrases]
	}
	return phrases
}

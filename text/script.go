package text

// Script membership is decided with small closed code point range tables
// rather than locale-dependent lookups, keeping behavior portable across
// platforms and Go versions.

// scriptRange is an inclusive Unicode code point range.
type scriptRange struct {
	lo, hi rune
}

// cjkRanges covers the scripts the merger treats as CJK: Hiragana,
// Katakana, and the CJK Unified Ideographs block.
var cjkRanges = []scriptRange{
	{0x3040, 0x309F}, // Hiragana
	{0x30A0, 0x30FF}, // Katakana
	{0x4E00, 0x9FAF}, // CJK Unified Ideographs
}

// kanaRanges covers Hiragana and Katakana only, used for language
// identification (kana is unique to Japanese).
var kanaRanges = []scriptRange{
	{0x3040, 0x309F},
	{0x30A0, 0x30FF},
}

// hanRanges covers the shared ideograph block.
var hanRanges = []scriptRange{
	{0x4E00, 0x9FAF},
}

func inRanges(r rune, ranges []scriptRange) bool {
	for _, sr := range ranges {
		if r >= sr.lo && r <= sr.hi {
			return true
		}
	}
	return false
}

// IsCJK reports whether r falls in the Hiragana, Katakana, or CJK
// ideograph ranges.
func IsCJK(r rune) bool {
	return inRanges(r, cjkRanges)
}

// IsKana reports whether r is Hiragana or Katakana.
func IsKana(r rune) bool {
	return inRanges(r, kanaRanges)
}

// IsHan reports whether r is a CJK unified ideograph.
func IsHan(r rune) bool {
	return inRanges(r, hanRanges)
}

// ContainsCJK reports whether s contains at least one CJK rune.
func ContainsCJK(s string) bool {
	for _, r := range s {
		if IsCJK(r) {
			return true
		}
	}
	return false
}

// CountScripts returns the number of kana runes, Han runes, and total runes
// in s. Used to identify the dominant script of a document.
func CountScripts(s string) (kana, han, total int) {
	for _, r := range s {
		total++
		switch {
		case IsKana(r):
			kana++
		case IsHan(r):
			han++
		}
	}
	return kana, han, total
}

// latinTerminals are sentence-terminal punctuation marks for Latin-script
// text. Colon and semicolon end a clause firmly enough that the following
// line is not a continuation.
const latinTerminals = ".!?:;"

// cjkTerminals are sentence-terminal marks for CJK text, including closing
// quotation brackets.
const cjkTerminals = "。！？」』；"

// HasTerminalPunct reports whether s ends with terminal sentence
// punctuation, Latin or CJK.
func HasTerminalPunct(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	last := runes[len(runes)-1]
	for _, t := range latinTerminals {
		if last == t {
			return true
		}
	}
	return HasCJKTerminal(s)
}

// HasCJKTerminal reports whether s ends with CJK terminal punctuation.
func HasCJKTerminal(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	last := runes[len(runes)-1]
	for _, t := range cjkTerminals {
		if last == t {
			return true
		}
	}
	return false
}

package entities

import (
	"strings"
	"testing"
)

func TestKeyPhrases(t *testing.T) {
	text := "The Machine Learning Pipeline processes records nightly. " +
		"Results feed the Data Warehouse via HTTP using SHA256 digests."

	got := KeyPhrases(text)

	contains := func(want string) bool {
		for _, p := range got {
			if p == want {
				return true
			}
		}
		return false
	}

	for _, want := range []string{"Data Warehouse", "HTTP", "SHA256"} {
		if !contains(want) {
			t.Errorf("KeyPhrases missing %q: %v", want, got)
		}
	}
	if !contains("The Machine Learning Pipeline") && !contains("Machine Learning Pipeline") {
		t.Errorf("capitalized run not extracted: %v", got)
	}
}

func TestKeyPhrasesDeduplicated(t *testing.T) {
	text := strings.Repeat("Annual Report ", 5)

	got := KeyPhrases(text)
	seen := make(map[string]int)
	for _, p := range got {
		seen[p]++
		if seen[p] > 1 {
			t.Fatalf("duplicate phrase %q in %v", p, got)
		}
	}
}

func TestKeyPhrasesBounded(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString("Unique Phrase ")
		sb.WriteString(strings.Repeat(string(rune('A'+i%26))+"x ", 2))
	}

	got := KeyPhrases(sb.String())
	if len(got) > maxKeyPhrases {
		t.Errorf("got %d phrases, want at most %d", len(got), maxKeyPhrases)
	}
}

func TestKeyPhrasesEmpty(t *testing.T) {
	if got := KeyPhrases("nothing capitalized here at all"); len(got) != 0 {
		t.Errorf("expected no phrases, got %v", got)
	}
}

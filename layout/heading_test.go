package layout

import (
	"reflect"
	"testing"

	"github.com/tsawler/outliner/model"
)

func scored(text string, emphasis float64, page int) model.ScoredLine {
	return model.ScoredLine{
		LogicalLine: model.LogicalLine{Text: text, Page: page},
		Emphasis:    emphasis,
	}
}

func TestCalculateThresholds(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   Thresholds
	}{
		{
			name:   "no scores falls back",
			scores: nil,
			want:   Thresholds{H1: 14, H2: 12, H3: 11},
		},
		{
			name:   "single score derives lower ranks",
			scores: []float64{12},
			want:   Thresholds{H1: 12, H2: 11, H3: 10},
		},
		{
			name:   "two distinct scores",
			scores: []float64{18, 10},
			want:   Thresholds{H1: 18, H2: 10, H3: 9},
		},
		{
			name:   "duplicates collapse to distinct ranks",
			scores: []float64{10, 14, 12, 10, 18, 18},
			want:   Thresholds{H1: 18, H2: 14, H3: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateThresholds(tt.scores)
			if got != tt.want {
				t.Errorf("CalculateThresholds(%v) = %+v, want %+v", tt.scores, got, tt.want)
			}
			if got.H1 < got.H2 || got.H2 < got.H3 {
				t.Errorf("thresholds not monotonic: %+v", got)
			}
		})
	}
}

func TestClassifyAllCapsHeading(t *testing.T) {
	c := NewClassifier()

	got := c.Classify([]model.ScoredLine{scored("INTRODUCTION", 18, 0)})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	cand := got[0]
	if cand.Level != 1 {
		t.Errorf("level = %d, want 1", cand.Level)
	}
	if cand.Title != "INTRODUCTION" {
		t.Errorf("title = %q, want INTRODUCTION", cand.Title)
	}
	if cand.Confidence < 0.8 {
		t.Errorf("confidence = %v, want >= 0.8", cand.Confidence)
	}
}

func TestClassifyNumberedSubsection(t *testing.T) {
	c := NewClassifier()

	got := c.Classify([]model.ScoredLine{scored("1.2.3 Detailed Analysis", 16, 4)})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	cand := got[0]
	if cand.Level != 3 {
		t.Errorf("level = %d, want 3", cand.Level)
	}
	if cand.Title != "1.2.3 Detailed Analysis" {
		t.Errorf("numbering should survive cleanup: title = %q", cand.Title)
	}
	if cand.Page != 4 {
		t.Errorf("page = %d, want 4", cand.Page)
	}
}

func TestClassifyPatternBeatsSize(t *testing.T) {
	c := NewClassifier()

	// Low emphasis, but the pattern signal has priority.
	lines := []model.ScoredLine{
		scored("irrelevant high scoring filler line", 18, 0),
		scored("more filler to anchor thresholds", 16, 0),
		scored("a third filler line for rank three", 14, 0),
		scored("Chapter 5 Overview", 8, 1),
	}

	got := c.Classify(lines)
	found := false
	for _, cand := range got {
		if cand.Title == "Chapter 5 Overview" {
			found = true
			if cand.Level != 1 {
				t.Errorf("level = %d, want 1 from the pattern signal", cand.Level)
			}
		}
	}
	if !found {
		t.Fatal("chapter heading not classified")
	}
}

func TestClassifySizeFallback(t *testing.T) {
	c := NewClassifier()

	// No pattern matches the first line; emphasis alone carries it to level 1.
	lines := []model.ScoredLine{
		scored("mission critical parameters", 18, 0),
		scored("ordinary supporting body text sits here", 12, 0),
		scored("more ordinary body text below it", 10, 0),
	}

	got := c.Classify(lines)
	if len(got) == 0 {
		t.Fatal("expected candidates")
	}
	if got[0].Title != "mission critical parameters" || got[0].Level != 1 {
		t.Errorf("got %+v, want level 1 via emphasis", got[0])
	}
}

func TestClassifyContentFallback(t *testing.T) {
	c := NewClassifier()

	// Below every size threshold and matching no pattern, but carrying a
	// section keyword.
	lines := []model.ScoredLine{
		scored("filler line anchoring rank one here", 18, 0),
		scored("filler line anchoring rank two here", 16, 0),
		scored("filler line anchoring rank three here", 14, 0),
		scored("Results and findings", 9, 2),
	}

	got := c.Classify(lines)
	found := false
	for _, cand := range got {
		if cand.Title == "Results and findings" {
			found = true
			if cand.Level != 2 {
				t.Errorf("level = %d, want 2 from the content signal", cand.Level)
			}
		}
	}
	if !found {
		t.Fatal("keyword heading not classified")
	}
}

func TestClassifyCJKSectionMarker(t *testing.T) {
	c := NewClassifier()

	got := c.Classify([]model.ScoredLine{scored("第1章 はじめに", 15, 0)})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Level != 1 {
		t.Errorf("level = %d, want 1", got[0].Level)
	}
}

func TestClassifyDropsDegenerateLines(t *testing.T) {
	c := NewClassifier()

	got := c.Classify([]model.ScoredLine{scored("Hi", 18, 0)})
	if len(got) != 0 {
		t.Errorf("two-rune line should be dropped, got %v", got)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	c := NewClassifier()

	lines := []model.ScoredLine{
		scored("INTRODUCTION", 18, 0),
		scored("1.2 Background Material", 16, 1),
		scored("plain body text through the middle of the page", 10, 1),
	}

	first := c.Classify(lines)
	second := c.Classify(lines)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("classification not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1. Introduction", "1. Introduction"}, // numbered heading keeps its number
		{"3.14 and counting", "and counting"},  // bare ordinal prefix dropped
		{"• Bullet Item", "Bullet Item"},
		{"「概要」", "概要"},
		{"Summary ----- continued", "Summary continued"},
		{"Overview.......", "Overview"},
		{"Notes *** continued", "Notes continued"},
		{"Heading ———", "Heading"},
		{"Tables ___ figures", "Tables figures"},
		{"Conclusion:", "Conclusion"},
		{"  Padded   Title  ", "Padded Title"},
	}

	for _, tt := range tests {
		if got := CleanTitle(tt.input); got != tt.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

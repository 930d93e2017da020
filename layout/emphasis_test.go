package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/outliner/model"
)

func TestScore(t *testing.T) {
	s := NewScorer()

	body := strings.Repeat("plain words here ", 7) + "end"       // 122 runes
	longBody := strings.Repeat("plain words here ", 10) + "done" // 174 runes

	tests := []struct {
		name string
		line string
		want float64
	}{
		{"all caps heading", "INTRODUCTION", 18},
		{"numbered subsection", "1.2.3 Detailed Analysis", 17},
		{"chapter heading", "Chapter 1: Getting Started", 18},
		{"title cased", "Getting Started With Go", 14},
		{"cjk chapter marker", "第1章 はじめに", 15},
		{"cjk bracketed heading", "「概要」", 13},
		{"plain body", body, 9},
		{"very long body clamps to floor", longBody, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.line); got != tt.want {
				t.Errorf("Score(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestScoreBounds(t *testing.T) {
	s := NewScorer()

	lines := []string{
		"",
		"CHAPTER 1 SUMMARY OVERVIEW INTRODUCTION",
		strings.Repeat("x.y.z!?;, ", 30),
		"1. 2. 3. 4. 5.",
		"第1章 「概要」 SECTION PART",
	}
	for _, line := range lines {
		got := s.Score(line)
		if got < model.MinEmphasis || got > model.MaxEmphasis {
			t.Errorf("Score(%q) = %v, outside [%v, %v]", line, got, model.MinEmphasis, model.MaxEmphasis)
		}
	}
}

func TestScoreAll(t *testing.T) {
	s := NewScorer()

	lines := []model.LogicalLine{
		{Text: "INTRODUCTION", Page: 0},
		{Text: "Ordinary paragraph text that goes on for a while without standing out at all.", Page: 3},
	}

	scored := s.ScoreAll(lines)
	if len(scored) != 2 {
		t.Fatalf("ScoreAll returned %d lines, want 2", len(scored))
	}
	if scored[0].Emphasis <= scored[1].Emphasis {
		t.Errorf("heading scored %v, body %v; heading should be higher",
			scored[0].Emphasis, scored[1].Emphasis)
	}
	if scored[1].Page != 3 {
		t.Errorf("page not preserved: got %d, want 3", scored[1].Page)
	}
}

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"INTRODUCTION", true},
		{"TABLE OF CONTENTS", true},
		{"IPv6", false},
		{"Mixed Case", false},
		{"AB", false},     // too few cased letters
		{"第1章", false},    // uncased script
		{"123 456", false}, // no letters
	}

	for _, tt := range tests {
		if got := isAllCaps(tt.line); got != tt.want {
			t.Errorf("isAllCaps(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestMajorityTitleCased(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Getting Started With Go", true},
		{"The quick brown fox", false},
		{"Annual Report for shareholders", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := majorityTitleCased(tt.line); got != tt.want {
			t.Errorf("majorityTitleCased(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

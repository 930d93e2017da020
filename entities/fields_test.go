package entities

import (
	"reflect"
	"testing"
)

func TestExtractEmails(t *testing.T) {
	e := NewExtractor()

	fields := e.Extract("Write to support@example.com or sales@example.co.uk. Again: support@example.com.")
	if fields == nil {
		t.Fatal("expected fields")
	}
	want := []string{"support@example.com", "sales@example.co.uk"}
	if !reflect.DeepEqual(fields.Emails, want) {
		t.Errorf("Emails = %v, want %v", fields.Emails, want)
	}
}

func TestExtractPhonesNormalized(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		input string
		want  string
	}{
		{"Call 555-123-4567 today", "(555) 123-4567"},
		{"Call (555) 123-4567 today", "(555) 123-4567"},
		{"Call +1 800 555 0199 today", "(800) 555-0199"},
		{"Call 555.123.4567 today", "(555) 123-4567"},
	}

	for _, tt := range tests {
		fields := e.Extract(tt.input)
		if fields == nil || len(fields.Phones) != 1 {
			t.Errorf("Extract(%q): expected one phone, got %+v", tt.input, fields)
			continue
		}
		if fields.Phones[0] != tt.want {
			t.Errorf("Extract(%q) phone = %q, want %q", tt.input, fields.Phones[0], tt.want)
		}
	}
}

func TestExtractVersionsCaptureNumberOnly(t *testing.T) {
	e := NewExtractor()

	fields := e.Extract("Shipped in Version 2.1.3, superseding v1.9.")
	if fields == nil {
		t.Fatal("expected fields")
	}
	want := []string{"2.1.3", "1.9"}
	if !reflect.DeepEqual(fields.Versions, want) {
		t.Errorf("Versions = %v, want %v", fields.Versions, want)
	}
}

func TestExtractCopyrights(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		input string
		want  []string
	}{
		{"© 2021 Example Corp", []string{"2021"}},
		{"Copyright 2019-2021 Example Corp", []string{"2019-2021"}},
		{"Copyright © 2020", []string{"2020"}},
	}

	for _, tt := range tests {
		fields := e.Extract(tt.input)
		if fields == nil {
			t.Errorf("Extract(%q): expected fields", tt.input)
			continue
		}
		if !reflect.DeepEqual(fields.Copyrights, tt.want) {
			t.Errorf("Extract(%q) copyrights = %v, want %v", tt.input, fields.Copyrights, tt.want)
		}
	}
}

func TestExtractAssortedCategories(t *testing.T) {
	e := NewExtractor()

	fields := e.Extract("Invoice dated 03/15/2024 totals $1,234.56. " +
		"See https://example.com/docs for details. Ref: INV-2024-001. ID: AB12345. " +
		"Office at 1247 Wilmington Avenue.")
	if fields == nil {
		t.Fatal("expected fields")
	}

	if got := fields.Dates; len(got) != 1 || got[0] != "03/15/2024" {
		t.Errorf("Dates = %v", got)
	}
	if got := fields.Prices; len(got) != 1 || got[0] != "$1,234.56" {
		t.Errorf("Prices = %v", got)
	}
	if got := fields.URLs; len(got) != 1 || got[0] != "https://example.com/docs" {
		t.Errorf("URLs = %v", got)
	}
	if got := fields.References; len(got) != 1 || got[0] != "INV-2024-001" {
		t.Errorf("References = %v", got)
	}
	if got := fields.IDNumbers; len(got) != 1 || got[0] != "AB12345" {
		t.Errorf("IDNumbers = %v", got)
	}
	if len(fields.Addresses) != 1 {
		t.Errorf("Addresses = %v", fields.Addresses)
	}
}

func TestExtractNothingIsNil(t *testing.T) {
	e := NewExtractor()

	if fields := e.Extract("plain prose with nothing structured in it"); fields != nil {
		t.Errorf("expected nil, got %+v", fields)
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"a", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dedupe = %v, want %v", got, want)
	}

	if got := dedupe(nil); got != nil {
		t.Errorf("dedupe(nil) = %v, want nil", got)
	}
}

package ui

import (
	"strings"
	"testing"
	"time"
)

func TestCompleteLast(t *testing.T) {
	c := &completer{universe: []string{"work", "project", "personal"}}

	tests := []struct {
		input    string
		expected string
	}{
		{"wo", "work"},
		{"rust wo", "rust work"},
		{"rust pro", "rust project"},
		{"xyzzy", "xyzzy"}, // no match: input untouched
		{"", "work"},       // empty input: first suggestion
		{"rust ", "rust work"},
	}
	for _, tt := range tests {
		if got := c.completeLast(tt.input); got != tt.expected {
			t.Errorf("completeLast(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestValidateTitle(t *testing.T) {
	if err := validateTitle(""); err == nil {
		t.Error("empty title should be rejected")
	}
	if err := validateTitle("   "); err == nil {
		t.Error("whitespace-only title should be rejected")
	}
	if err := validateTitle("My Great Note"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
}

func TestValidateKeywords(t *testing.T) {
	valid := []string{"", "work", "work project", "  spaced   out  "}
	for _, in := range valid {
		if err := validateKeywords(in); err != nil {
			t.Errorf("validateKeywords(%q) = %v, want nil", in, err)
		}
	}

	invalid := []string{"work-stuff", "a_b", "a;b", "a,b", "ok bad-tag"}
	for _, in := range invalid {
		if err := validateKeywords(in); err == nil {
			t.Errorf("validateKeywords(%q) should fail", in)
		}
	}
}

func TestMonthGrid(t *testing.T) {
	// January 2024: the 1st is a Monday, the 31st a Wednesday.
	anchor := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	weeks := monthGrid(anchor)

	if len(weeks) != 5 {
		t.Fatalf("weeks = %d, want 5", len(weeks))
	}
	for i, week := range weeks {
		if len(week) != 7 {
			t.Errorf("week %d has %d days", i, len(week))
		}
		if week[0].Weekday() != time.Monday {
			t.Errorf("week %d starts on %v, want Monday", i, week[0].Weekday())
		}
	}
	if first := weeks[0][0]; first.Day() != 1 || first.Month() != time.January {
		t.Errorf("grid starts at %v, want Jan 1", first)
	}
	last := weeks[len(weeks)-1][6]
	if last.Before(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local)) {
		t.Errorf("grid ends at %v, before month end", last)
	}
}

func TestMonthGrid_OffsetMonth(t *testing.T) {
	// March 2024: the 1st is a Friday, so the first row leads with
	// February days.
	anchor := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	weeks := monthGrid(anchor)

	first := weeks[0][0]
	if first.Month() != time.February || first.Day() != 26 {
		t.Errorf("grid starts at %v, want Feb 26", first)
	}
	if weeks[0][4].Day() != 1 || weeks[0][4].Month() != time.March {
		t.Errorf("Friday cell = %v, want Mar 1", weeks[0][4])
	}
}

func TestStyledName_ContainsParts(t *testing.T) {
	got := StyledName("20240105T093000--Meeting-Notes__work_project.md")
	for _, part := range []string{"20240105T093000", "--Meeting-Notes", "work", "project", ".md"} {
		if !strings.Contains(got, part) {
			t.Errorf("styled name %q missing %q", got, part)
		}
	}
}

func TestStyledName_ForeignFile(t *testing.T) {
	got := StyledName("random.txt")
	if !strings.Contains(got, "random") || !strings.Contains(got, ".txt") {
		t.Errorf("styled name = %q", got)
	}
}

func TestKeywordsHelp_ListsEverySeparator(t *testing.T) {
	for _, sep := range []string{";", ",", "-", "_"} {
		if !strings.Contains(keywordsHelp, "'"+sep+"'") {
			t.Errorf("help text does not mention %q", sep)
		}
	}
}

func TestWrapWidth_NeverNonPositive(t *testing.T) {
	tests := []struct {
		width, want int
	}{
		{0, 20},
		{1, 20},
		{10, 20},
		{40, 38},
		{80, 78},
		{200, 78},
	}
	for _, tt := range tests {
		if got := wrapWidth(tt.width); got != tt.want {
			t.Errorf("wrapWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestHead(t *testing.T) {
	in := "\na\nb\nc\nd\n"
	if got := head(in, 2); got != "a\nb" {
		t.Errorf("head = %q", got)
	}
	if got := head("short", 10); got != "short" {
		t.Errorf("head = %q", got)
	}
}

package metadata

import (
	"testing"

	"github.com/vincent7f/MediaTagger/internal/model"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"\t \n", ""},
		{"a", "a"},
		{"a, b;c  d", "a; b; c; d"},
		{"a;;b,,c", "a; b; c"},
		{"  leading and trailing  ", "leading; and; trailing"},
		{"one", "one"},
		{"a; b; c; d", "a; b; c; d"}, // already normalized
	}

	for _, test := range tests {
		result := NormalizeTags(test.raw)
		if result != test.expected {
			t.Errorf("NormalizeTags(%q) = %q, expected %q", test.raw, result, test.expected)
		}
	}
}

func TestNormalizeTags_Idempotent(t *testing.T) {
	inputs := []string{"a, b;c  d", "x  y", "single", "tag1;tag2"}

	for _, input := range inputs {
		once := NormalizeTags(input)
		twice := NormalizeTags(once)
		if once != twice {
			t.Errorf("NormalizeTags not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestCountTags(t *testing.T) {
	entries := map[string]model.Entry{
		"/data/f1.mp4": {Tags: "a; b"},
		"/data/f2.mp4": {Tags: "b; c"},
		"/data/f3.mp4": {Tags: ""},
	}

	counts := CountTags(entries)

	expected := map[string]int{"a": 1, "b": 2, "c": 1}
	if len(counts) != len(expected) {
		t.Fatalf("Expected %d distinct tags, got %d", len(expected), len(counts))
	}
	for tag, want := range expected {
		if counts[tag] != want {
			t.Errorf("Count for %q = %d, expected %d", tag, counts[tag], want)
		}
	}
}

func TestCountTags_CaseSensitive(t *testing.T) {
	entries := map[string]model.Entry{
		"/data/f1.mp4": {Tags: "Tag"},
		"/data/f2.mp4": {Tags: "tag"},
	}

	counts := CountTags(entries)
	if counts["Tag"] != 1 || counts["tag"] != 1 {
		t.Errorf("Tag counting should be case-sensitive, got %v", counts)
	}
}

func TestCountUntagged(t *testing.T) {
	entries := map[string]model.Entry{
		"/data/f1.mp4": {Tags: "a"},
		"/data/f2.mp4": {Tags: "   "},
		"/data/f3.mp4": {Tags: "", Notes: "notes only"},
	}

	n := CountUntagged(entries)
	if n != 2 {
		t.Errorf("CountUntagged = %d, expected 2", n)
	}
}

func TestFormatTagCounts(t *testing.T) {
	tests := []struct {
		name     string
		counts   map[string]int
		expected string
	}{
		{"empty", map[string]int{}, "(none)"},
		{"single", map[string]int{"a": 3}, "a (3)"},
		{"ordered by count then name", map[string]int{"b": 2, "a": 1, "c": 2}, "b (2), c (2), a (1)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := FormatTagCounts(test.counts)
			if result != test.expected {
				t.Errorf("FormatTagCounts(%v) = %q, expected %q", test.counts, result, test.expected)
			}
		})
	}
}

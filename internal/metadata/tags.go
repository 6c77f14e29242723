package metadata

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/vincent7f/MediaTagger/internal/model"
)

// TagJoinSeparator is the canonical separator in the persisted tags string.
const TagJoinSeparator = "; "

// tagSeparators matches the accepted input separators: runs of whitespace,
// commas, and semicolons.
var tagSeparators = regexp.MustCompile(`[\s;,]+`)

// NormalizeTags converts raw user input into the canonical tags string:
// tokens split on whitespace, comma or semicolon, trimmed, empties dropped,
// rejoined with "; ". Blank input normalizes to the empty string. The
// function is idempotent on already-normalized input.
func NormalizeTags(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	parts := tagSeparators.Split(trimmed, -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}

	return strings.Join(tokens, TagJoinSeparator)
}

// CountTags iterates all entries and counts occurrences per distinct tag.
// Matching is case-sensitive and exact.
func CountTags(entries map[string]model.Entry) map[string]int {
	counts := make(map[string]int)
	for _, entry := range entries {
		for _, part := range strings.Split(entry.Tags, ";") {
			if tag := strings.TrimSpace(part); tag != "" {
				counts[tag]++
			}
		}
	}
	return counts
}

// CountUntagged returns the number of entries without any tag.
func CountUntagged(entries map[string]model.Entry) int {
	n := 0
	for _, entry := range entries {
		if !entry.HasTags() {
			n++
		}
	}
	return n
}

// FormatTagCounts renders tag counts as "tag (n), tag (n)", ordered by
// descending count and then tag name. Empty counts render as "(none)".
func FormatTagCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "(none)"
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, fmt.Sprintf("%s (%d)", tag, counts[tag]))
	}
	return strings.Join(parts, ", ")
}

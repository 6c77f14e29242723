package model

import (
	"path/filepath"
	"strings"
)

// Entry holds the user-editable metadata attached to a single video file.
// Tags is a semicolon-joined list of normalized tokens; Notes is free text.
// Both may be empty.
type Entry struct {
	Tags  string `json:"tags"`
	Notes string `json:"notes"`
}

// HasTags returns true if the entry carries at least one non-blank tag.
func (e Entry) HasTags() bool {
	return strings.TrimSpace(e.Tags) != ""
}

// Video represents a single discovered video file shown as one table row.
type Video struct {
	Path    string // resolved absolute path, metadata map key
	RelPath string // path relative to the dataset directory, shown in the UI
}

// Name returns the base file name for display.
func (v Video) Name() string {
	return filepath.Base(v.Path)
}

package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vincent7f/MediaTagger/internal/model"
	"github.com/vincent7f/MediaTagger/internal/platform"
)

// Sidecar layout under the dataset directory
const (
	DataDirName      = ".data"
	MetadataFileName = "video_metadata.json"
	HistoryDirName   = "history"

	HistoryTimeLayout = "20060102_150405"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Path returns the location of the metadata sidecar file for a dataset.
func Path(datasetDir string) string {
	return filepath.Join(datasetDir, DataDirName, MetadataFileName)
}

// HistoryDir returns the location of the history snapshot directory.
func HistoryDir(datasetDir string) string {
	return filepath.Join(datasetDir, DataDirName, HistoryDirName)
}

// Load reads the metadata sidecar for a dataset and returns the mapping with
// keys resolved to absolute paths. A missing, unreadable or malformed file
// yields an empty mapping: a corrupt sidecar must never block the UI.
// Entries whose value is not a JSON object are skipped.
func Load(datasetDir string) map[string]model.Entry {
	out := make(map[string]model.Entry)

	raw, err := os.ReadFile(Path(datasetDir))
	if err != nil {
		return out
	}

	var onDisk map[string]json.RawMessage
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		return out
	}

	datasetResolved, err := filepath.Abs(datasetDir)
	if err != nil {
		datasetResolved = datasetDir
	}

	for relKey, value := range onDisk {
		var entry model.Entry
		if err := json.Unmarshal(value, &entry); err != nil {
			continue
		}
		out[absoluteKey(datasetResolved, relKey)] = entry
	}

	return out
}

// Save writes the mapping back to the sidecar with keys relative to the
// dataset directory, then copies the just-written file into the history
// directory with a timestamp suffix. I/O failures are returned to the
// caller; the in-memory mapping passed in is never modified.
func Save(datasetDir string, entries map[string]model.Entry) error {
	dataDir := filepath.Join(datasetDir, DataDirName)
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	datasetResolved, err := filepath.Abs(datasetDir)
	if err != nil {
		datasetResolved = datasetDir
	}

	onDisk := make(map[string]model.Entry, len(entries))
	for absKey, entry := range entries {
		onDisk[relativeKey(datasetResolved, absKey)] = entry
	}

	encoded, err := json.MarshalIndent(onDisk, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	if err := os.WriteFile(Path(datasetDir), encoded, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	if _, err := writeHistorySnapshot(datasetDir, encoded, time.Now()); err != nil {
		return err
	}

	return nil
}

// writeHistorySnapshot stores a byte-identical copy of the sidecar under the
// history directory, named with the given timestamp. Snapshots accumulate
// indefinitely; the application never reads them back or prunes them.
func writeHistorySnapshot(datasetDir string, contents []byte, now time.Time) (string, error) {
	historyDir := HistoryDir(datasetDir)
	if err := os.MkdirAll(historyDir, DefaultDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create history directory: %w", err)
	}

	ext := filepath.Ext(MetadataFileName)
	stem := strings.TrimSuffix(MetadataFileName, ext)
	name := fmt.Sprintf("%s_%s%s", stem, now.Format(HistoryTimeLayout), ext)

	snapshotPath := filepath.Join(historyDir, name)
	if err := os.WriteFile(snapshotPath, contents, DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write history snapshot: %w", err)
	}

	return snapshotPath, nil
}

// Merge produces a mapping covering exactly the given video list: files
// missing from the stored mapping get a fresh empty entry, stored entries
// whose file is no longer in the list are dropped.
func Merge(videos []model.Video, entries map[string]model.Entry) map[string]model.Entry {
	result := make(map[string]model.Entry, len(videos))
	for _, video := range videos {
		if entry, ok := entries[video.Path]; ok {
			result[video.Path] = entry
		} else {
			result[video.Path] = model.Entry{}
		}
	}
	return result
}

// absoluteKey resolves an on-disk key to the in-memory absolute form. Keys
// stored as absolute paths (the outside-the-dataset fallback) pass through.
func absoluteKey(datasetResolved, relKey string) string {
	if filepath.IsAbs(relKey) {
		return filepath.Clean(relKey)
	}
	return filepath.Join(datasetResolved, relKey)
}

// relativeKey converts an absolute in-memory key to the on-disk relative
// form, falling back to the absolute path verbatim for entries that sit
// outside the dataset root. A file whose name merely begins with ".." is
// still inside the root.
func relativeKey(datasetResolved, absKey string) string {
	rel, err := filepath.Rel(datasetResolved, absKey)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return absKey
	}
	return rel
}

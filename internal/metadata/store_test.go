package metadata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vincent7f/MediaTagger/internal/model"
)

func TestLoad_MissingFile(t *testing.T) {
	datasetDir := t.TempDir()

	entries := Load(datasetDir)
	if len(entries) != 0 {
		t.Errorf("Expected empty mapping for missing sidecar, got %d entries", len(entries))
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	datasetDir := t.TempDir()
	writeSidecar(t, datasetDir, []byte("{not valid json"))

	entries := Load(datasetDir)
	if len(entries) != 0 {
		t.Errorf("Expected empty mapping for corrupt sidecar, got %d entries", len(entries))
	}
}

func TestLoad_NonObjectRoot(t *testing.T) {
	datasetDir := t.TempDir()
	writeSidecar(t, datasetDir, []byte(`["not", "a", "mapping"]`))

	entries := Load(datasetDir)
	if len(entries) != 0 {
		t.Errorf("Expected empty mapping for non-object sidecar, got %d entries", len(entries))
	}
}

func TestLoad_SkipsMalformedEntries(t *testing.T) {
	datasetDir := t.TempDir()
	writeSidecar(t, datasetDir, []byte(`{
		"good.mp4": {"tags": "a; b", "notes": "keep"},
		"bad.mp4": "not an object",
		"worse.mp4": 42
	}`))

	entries := Load(datasetDir)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	key := filepath.Join(mustAbs(t, datasetDir), "good.mp4")
	entry, ok := entries[key]
	if !ok {
		t.Fatalf("Expected key %s in mapping", key)
	}
	if entry.Tags != "a; b" || entry.Notes != "keep" {
		t.Errorf("Unexpected entry %+v", entry)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	datasetDir := t.TempDir()
	datasetAbs := mustAbs(t, datasetDir)

	inside := filepath.Join(datasetAbs, "clips", "intro.mp4")
	outside := filepath.Join(mustAbs(t, t.TempDir()), "stray.mp4")

	entries := map[string]model.Entry{
		inside:  {Tags: "scene; indoor", Notes: "first take"},
		outside: {Tags: "orphan", Notes: ""},
	}

	if err := Save(datasetDir, entries); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Load(datasetDir)
	if len(loaded) != len(entries) {
		t.Fatalf("Expected %d entries after round trip, got %d", len(entries), len(loaded))
	}

	for key, want := range entries {
		got, ok := loaded[key]
		if !ok {
			t.Errorf("Key %s missing after round trip", key)
			continue
		}
		if got != want {
			t.Errorf("Entry for %s = %+v, expected %+v", key, got, want)
		}
	}
}

func TestSave_RelativeKeysOnDisk(t *testing.T) {
	datasetDir := t.TempDir()
	datasetAbs := mustAbs(t, datasetDir)

	inside := filepath.Join(datasetAbs, "clips", "intro.mp4")
	outside := filepath.Join(mustAbs(t, t.TempDir()), "stray.mp4")

	entries := map[string]model.Entry{
		inside:  {Tags: "x"},
		outside: {Tags: "y"},
	}

	if err := Save(datasetDir, entries); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(Path(datasetDir))
	if err != nil {
		t.Fatalf("Failed to read sidecar: %v", err)
	}

	var onDisk map[string]model.Entry
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		t.Fatalf("Sidecar is not valid JSON: %v", err)
	}

	relKey := filepath.Join("clips", "intro.mp4")
	if _, ok := onDisk[relKey]; !ok {
		t.Errorf("Expected relative key %q on disk, keys: %v", relKey, keysOf(onDisk))
	}
	if _, ok := onDisk[outside]; !ok {
		t.Errorf("Expected outside-the-dataset key to stay absolute, keys: %v", keysOf(onDisk))
	}
}

func TestSave_WritesHistorySnapshot(t *testing.T) {
	datasetDir := t.TempDir()
	key := filepath.Join(mustAbs(t, datasetDir), "a.mp4")

	if err := Save(datasetDir, map[string]model.Entry{key: {Tags: "x"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	snapshots, err := os.ReadDir(HistoryDir(datasetDir))
	if err != nil {
		t.Fatalf("Failed to read history directory: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("Expected 1 history snapshot, got %d", len(snapshots))
	}

	sidecar, err := os.ReadFile(Path(datasetDir))
	if err != nil {
		t.Fatalf("Failed to read sidecar: %v", err)
	}
	snapshot, err := os.ReadFile(filepath.Join(HistoryDir(datasetDir), snapshots[0].Name()))
	if err != nil {
		t.Fatalf("Failed to read snapshot: %v", err)
	}

	if string(sidecar) != string(snapshot) {
		t.Error("History snapshot should be byte-identical to the sidecar")
	}
}

func TestWriteHistorySnapshot_DistinctFilesPerTimestamp(t *testing.T) {
	datasetDir := t.TempDir()
	contents := []byte(`{"a.mp4": {"tags": "x", "notes": ""}}`)

	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Second)

	firstPath, err := writeHistorySnapshot(datasetDir, contents, first)
	if err != nil {
		t.Fatalf("First snapshot failed: %v", err)
	}
	secondPath, err := writeHistorySnapshot(datasetDir, contents, second)
	if err != nil {
		t.Fatalf("Second snapshot failed: %v", err)
	}

	if firstPath == secondPath {
		t.Errorf("Expected distinct snapshot paths, both were %s", firstPath)
	}

	for _, path := range []string{firstPath, secondPath} {
		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read snapshot %s: %v", path, err)
		}
		var decoded map[string]model.Entry
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Errorf("Snapshot %s does not deserialize: %v", path, err)
		}
	}
}

func TestSave_DotDotPrefixedNameStaysRelative(t *testing.T) {
	datasetDir := t.TempDir()
	datasetAbs := mustAbs(t, datasetDir)

	// A file whose name starts with ".." is still inside the dataset and
	// must be stored under its relative key, not the absolute fallback.
	inside := filepath.Join(datasetAbs, "..archive.mp4")
	entries := map[string]model.Entry{
		inside: {Tags: "old"},
	}

	if err := Save(datasetDir, entries); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(Path(datasetDir))
	if err != nil {
		t.Fatalf("Failed to read sidecar: %v", err)
	}

	var onDisk map[string]model.Entry
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		t.Fatalf("Failed to decode sidecar: %v", err)
	}

	if _, ok := onDisk["..archive.mp4"]; !ok {
		t.Errorf("Expected relative key %q on disk, got keys %v", "..archive.mp4", keysOf(onDisk))
	}

	loaded := Load(datasetDir)
	if _, ok := loaded[inside]; !ok {
		t.Errorf("Expected key %s after round trip, got %v", inside, keysOf(loaded))
	}
}

func TestSave_FailsOnUnwritableDataDir(t *testing.T) {
	datasetDir := t.TempDir()

	// Occupy the .data path with a plain file so the directory cannot be created.
	if err := os.WriteFile(filepath.Join(datasetDir, DataDirName), []byte("blocker"), 0644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	err := Save(datasetDir, map[string]model.Entry{})
	if err == nil {
		t.Error("Expected error when data directory cannot be created, got nil")
	}
}

func TestMerge(t *testing.T) {
	videoA := model.Video{Path: "/data/a.mp4", RelPath: "a.mp4"}
	videoB := model.Video{Path: "/data/b.mp4", RelPath: "b.mp4"}

	stored := map[string]model.Entry{
		"/data/a.mp4": {Tags: "x"},
		"/data/c.mp4": {Tags: "stale", Notes: "gone from disk"},
	}

	merged := Merge([]model.Video{videoA, videoB}, stored)

	if len(merged) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(merged))
	}
	if merged["/data/a.mp4"] != (model.Entry{Tags: "x"}) {
		t.Errorf("Existing entry should be kept, got %+v", merged["/data/a.mp4"])
	}
	if merged["/data/b.mp4"] != (model.Entry{}) {
		t.Errorf("New file should get an empty entry, got %+v", merged["/data/b.mp4"])
	}
	if _, ok := merged["/data/c.mp4"]; ok {
		t.Error("Entry for a file no longer on disk should be dropped")
	}
}

func writeSidecar(t *testing.T, datasetDir string, contents []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(datasetDir, DataDirName), 0755); err != nil {
		t.Fatalf("Failed to create data directory: %v", err)
	}
	if err := os.WriteFile(Path(datasetDir), contents, 0644); err != nil {
		t.Fatalf("Failed to write sidecar: %v", err)
	}
}

func mustAbs(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("filepath.Abs(%s) failed: %v", path, err)
	}
	return abs
}

func keysOf(m map[string]model.Entry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"clip.mp4", true},
		{"clip.MP4", true},
		{"clip.avi", true},
		{"clip.mov", true},
		{"clip.mkv", true},
		{"clip.flv", true},
		{"clip.webm", true},
		{"clip.txt", false},
		{"clip.jpg", false},
		{"clip", false},
		{"dir/video.mp4", true},
	}

	for _, test := range tests {
		result := IsVideoFile(test.path)
		if result != test.expected {
			t.Errorf("IsVideoFile(%q) = %v, expected %v", test.path, result, test.expected)
		}
	}
}

func TestScanVideos(t *testing.T) {
	datasetDir := t.TempDir()

	files := []string{
		"b.mp4",
		"a.mkv",
		filepath.Join("sub", "c.webm"),
		"notes.txt",
		filepath.Join("sub", "image.jpg"),
	}
	for _, name := range files {
		path := filepath.Join(datasetDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	videos := ScanVideos(datasetDir)

	if len(videos) != 3 {
		t.Fatalf("Expected 3 videos, got %d", len(videos))
	}

	// Sorted by absolute path
	expectedRel := []string{"a.mkv", "b.mp4", filepath.Join("sub", "c.webm")}
	for i, want := range expectedRel {
		if videos[i].RelPath != want {
			t.Errorf("Video %d RelPath = %s, expected %s", i, videos[i].RelPath, want)
		}
		if !filepath.IsAbs(videos[i].Path) {
			t.Errorf("Video %d Path should be absolute, got %s", i, videos[i].Path)
		}
	}
}

func TestScanVideos_NotADirectory(t *testing.T) {
	datasetDir := t.TempDir()
	filePath := filepath.Join(datasetDir, "file.mp4")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if videos := ScanVideos(filePath); videos != nil {
		t.Errorf("Expected nil for non-directory, got %d videos", len(videos))
	}
	if videos := ScanVideos(filepath.Join(datasetDir, "missing")); videos != nil {
		t.Errorf("Expected nil for missing directory, got %d videos", len(videos))
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	nonExistent := filepath.Join(t.TempDir(), "missing.mp4")

	err := OpenFileWithDefaultApp(nonExistent)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error should report a missing file, got: %v", err)
	}
	if strings.Contains(err.Error(), "failed to launch") {
		t.Errorf("Missing file must not be reported as a launch failure, got: %v", err)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistent := filepath.Join(t.TempDir(), "missing.mp4")

	err := OpenFileInManager(nonExistent)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error should report a missing file, got: %v", err)
	}
}

func TestExportPaths(t *testing.T) {
	destPath := filepath.Join(t.TempDir(), "export.txt")

	paths := []string{"/data/b.mp4", "/data/a.mp4", "/data/sub/c.mp4"}
	if err := ExportPaths(destPath, paths); err != nil {
		t.Fatalf("ExportPaths failed: %v", err)
	}

	raw, err := os.ReadFile(destPath)
	if err != nil {
		t.Fatalf("Failed to read export file: %v", err)
	}

	expected := "/data/a.mp4\n/data/b.mp4\n/data/sub/c.mp4\n"
	if string(raw) != expected {
		t.Errorf("Export content = %q, expected %q", string(raw), expected)
	}

	// Input slice must not be reordered
	if paths[0] != "/data/b.mp4" {
		t.Error("ExportPaths should not mutate the input slice")
	}
}

func TestExportPaths_BadDestination(t *testing.T) {
	destPath := filepath.Join(t.TempDir(), "no-such-dir", "export.txt")

	if err := ExportPaths(destPath, []string{"/data/a.mp4"}); err == nil {
		t.Error("Expected error for unwritable destination, got nil")
	}
}

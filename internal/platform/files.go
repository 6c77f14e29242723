package platform

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/vincent7f/MediaTagger/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// VideoExtensions is the fixed set of recognized video file extensions
// (lowercase, with dot).
var VideoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".flv":  true,
	".webm": true,
}

// IsVideoFile reports whether the path has a recognized video extension.
func IsVideoFile(path string) bool {
	return VideoExtensions[strings.ToLower(filepath.Ext(path))]
}

// ScanVideos walks the dataset directory recursively and returns every video
// file as a row sorted by absolute path. A path that is not a directory
// yields an empty list. Unreadable subdirectories are skipped rather than
// aborting the scan.
func ScanVideos(datasetDir string) []model.Video {
	info, err := os.Stat(datasetDir)
	if err != nil || !info.IsDir() {
		return nil
	}

	datasetResolved, err := filepath.Abs(datasetDir)
	if err != nil {
		datasetResolved = datasetDir
	}

	var videos []model.Video
	filepath.WalkDir(datasetResolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsVideoFile(path) {
			return nil
		}

		rel, err := filepath.Rel(datasetResolved, path)
		if err != nil {
			rel = path
		}
		videos = append(videos, model.Video{Path: path, RelPath: rel})
		return nil
	})

	sort.Slice(videos, func(i, j int) bool {
		return videos[i].Path < videos[j].Path
	})
	return videos
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenFileWithDefaultApp opens the file with the default system application.
// A missing file and a failed handler launch produce distinct errors so the
// UI can report them separately.
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := statAbs(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		err = exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		err = exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		err = exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	if err != nil {
		return fmt.Errorf("failed to launch default application: %w", err)
	}
	return nil
}

// OpenFileInManager opens the system file manager with the file highlighted
// where the platform supports selection.
func OpenFileInManager(filePath string) error {
	absPath, err := statAbs(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		err = exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		err = exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openDirInManagerLinux(filepath.Dir(absPath))
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	if err != nil {
		return fmt.Errorf("failed to launch file manager: %w", err)
	}
	return nil
}

// openDirInManagerLinux opens the containing directory on Linux.
// File selection is not standardized there, so the parent directory is shown.
func openDirInManagerLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			if err := exec.Command(fm, dir).Run(); err != nil {
				return fmt.Errorf("failed to launch file manager: %w", err)
			}
			return nil
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// ExportPaths writes the given file paths to destPath as plain text, one
// path per line, sorted lexicographically.
func ExportPaths(destPath string, paths []string) error {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	var b strings.Builder
	for _, path := range sorted {
		b.WriteString(path)
		b.WriteString("\n")
	}

	if err := os.WriteFile(destPath, []byte(b.String()), DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// statAbs verifies the file exists and returns its absolute path.
func statAbs(filePath string) (string, error) {
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

package preview

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vincent7f/MediaTagger/internal/metadata"
	"github.com/vincent7f/MediaTagger/internal/model"
	"github.com/vincent7f/MediaTagger/internal/platform"
)

// FFmpeg constants for frame extraction
const (
	FFmpegCommand  = "ffmpeg"
	FFmpegLogLevel = "error"

	// Seek offset for the preview frame; on seek or decode failure the
	// extraction is retried from the first frame.
	DefaultSeekMs = 500

	// Frame is downsized to fit 320x240 keeping aspect ratio
	ScaleFilter = "scale=320:240:force_original_aspect_ratio=decrease"

	JPEGQuality = "3"
)

// Preview cache layout under the dataset data directory
const (
	PreviewsDirName = "previews"
	PreviewExt      = ".jpg"
)

const SweepIDPrefix = "sweep-"

// Service generates preview thumbnails in the background. One sweep runs per
// directory load; sweeps are sequential, fire-and-forget, and never
// cancelled. When ffmpeg is not installed every sweep is a silent no-op and
// the rest of the application keeps working without thumbnails.
type Service struct {
	sweeps      map[string]*model.PreviewSweep
	sweepsMutex sync.RWMutex
	ffmpegPath  string
	seekMs      int
	onUpdate    func(*model.PreviewResult) // callback for UI updates
}

// NewService creates a new preview service, probing for ffmpeg once.
func NewService() *Service {
	ffmpegPath, err := exec.LookPath(FFmpegCommand)
	if err != nil {
		log.Printf("ffmpeg not found, preview generation disabled: %v", err)
		ffmpegPath = ""
	}
	return &Service{
		sweeps:     make(map[string]*model.PreviewSweep),
		ffmpegPath: ffmpegPath,
		seekMs:     DefaultSeekMs,
	}
}

// SetSeekMs configures the preview frame seek offset in milliseconds.
// Sweeps already in flight keep the offset they were started with.
func (s *Service) SetSeekMs(ms int) {
	if ms < 0 {
		ms = 0
	}
	s.sweepsMutex.Lock()
	s.seekMs = ms
	s.sweepsMutex.Unlock()
}

// Available reports whether frame extraction is possible at all.
func (s *Service) Available() bool {
	return s.ffmpegPath != ""
}

// SetUpdateCallback sets the callback function for per-item sweep results.
// The callback runs on the worker goroutine; UI callers must marshal onto
// the UI thread themselves.
func (s *Service) SetUpdateCallback(callback func(*model.PreviewResult)) {
	s.onUpdate = callback
}

// Path returns the deterministic preview location for a video: md5 hex of
// the dataset-relative path string under <dataset>/.data/previews. For a
// video outside the dataset root the base name stands in for the relative
// path.
func Path(datasetDir, videoPath string) string {
	datasetResolved, err := filepath.Abs(datasetDir)
	if err != nil {
		datasetResolved = datasetDir
	}
	videoResolved, err := filepath.Abs(videoPath)
	if err != nil {
		videoResolved = videoPath
	}

	rel, err := filepath.Rel(datasetResolved, videoResolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(videoPath)
	}

	sum := md5.Sum([]byte(rel))
	name := hex.EncodeToString(sum[:]) + PreviewExt
	return filepath.Join(datasetDir, metadata.DataDirName, PreviewsDirName, name)
}

// StartSweep launches a background worker that walks the given video list in
// order and generates every missing preview. The worker only reads the
// snapshot it is given and only writes preview image files; it never touches
// metadata. Returns nil when there is nothing to do or ffmpeg is missing.
func (s *Service) StartSweep(datasetDir string, videos []model.Video) *model.PreviewSweep {
	if !s.Available() || len(videos) == 0 {
		return nil
	}

	sweep := &model.PreviewSweep{
		ID:         generateSweepID(),
		DatasetDir: datasetDir,
		Status:     model.SweepStatusPending,
		Total:      len(videos),
		StartedAt:  time.Now(),
	}

	s.sweepsMutex.Lock()
	s.sweeps[sweep.ID] = sweep
	seekMs := s.seekMs
	s.sweepsMutex.Unlock()

	snapshot := make([]model.Video, len(videos))
	copy(snapshot, videos)

	go s.runSweep(sweep, snapshot, seekMs)

	return sweep
}

// GetSweep returns a sweep by ID
func (s *Service) GetSweep(id string) (*model.PreviewSweep, bool) {
	s.sweepsMutex.RLock()
	defer s.sweepsMutex.RUnlock()
	sweep, exists := s.sweeps[id]
	return sweep, exists
}

// runSweep walks the snapshot sequentially. There is no retry and no
// cancellation: a sweep started for a previously selected directory may
// still be finishing after a new one is loaded, and its notifications are
// harmless no-ops on the UI side. The worker only reads the snapshot and
// seek offset it was given; it never touches service fields unlocked.
func (s *Service) runSweep(sweep *model.PreviewSweep, videos []model.Video, seekMs int) {
	s.sweepsMutex.Lock()
	sweep.Status = model.SweepStatusRunning
	s.sweepsMutex.Unlock()

	for _, video := range videos {
		previewPath := Path(sweep.DatasetDir, video.Path)
		if _, err := os.Stat(previewPath); err == nil {
			s.sweepsMutex.Lock()
			sweep.Skipped++
			s.sweepsMutex.Unlock()
			continue
		}

		ok := s.generateOne(video.Path, previewPath, seekMs)

		s.sweepsMutex.Lock()
		if ok {
			sweep.Generated++
		} else {
			sweep.Failed++
			log.Printf("Preview generation skipped for %s", video.Path)
		}
		s.sweepsMutex.Unlock()

		s.notifyUpdate(&model.PreviewResult{
			SweepID:     sweep.ID,
			VideoPath:   video.Path,
			PreviewPath: previewPath,
			OK:          ok,
		})
	}

	s.sweepsMutex.Lock()
	sweep.Status = model.SweepStatusCompleted
	sweep.FinishedAt = time.Now()
	generated, skipped, failed := sweep.Generated, sweep.Skipped, sweep.Failed
	s.sweepsMutex.Unlock()

	log.Printf("Preview sweep %s finished: %d generated, %d skipped, %d failed",
		sweep.ID, generated, skipped, failed)
}

// generateOne extracts a single frame from the video into previewPath.
// The first attempt seeks to 500ms; if that fails the first frame is decoded
// instead. Any failure returns false without raising.
func (s *Service) generateOne(videoPath, previewPath string, seekMs int) bool {
	if !s.Available() {
		return false
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(previewPath)); err != nil {
		log.Printf("Failed to create previews directory for %s: %v", previewPath, err)
		return false
	}

	if err := s.extractFrame(videoPath, previewPath, seekArg(seekMs)); err == nil {
		return true
	}

	// Seek past the end of very short clips fails; fall back to frame zero.
	if err := s.extractFrame(videoPath, previewPath, ""); err != nil {
		os.Remove(previewPath)
		return false
	}
	return true
}

// extractFrame runs one ffmpeg invocation and verifies the output exists.
// An empty seek decodes the first frame.
func (s *Service) extractFrame(videoPath, previewPath, seek string) error {
	args := buildFFmpegArgs(videoPath, previewPath, seek)
	if err := exec.Command(s.ffmpegPath, args...).Run(); err != nil {
		return fmt.Errorf("ffmpeg failed for %s: %w", videoPath, err)
	}
	if _, err := os.Stat(previewPath); err != nil {
		return fmt.Errorf("ffmpeg produced no output for %s: %w", videoPath, err)
	}
	return nil
}

// seekArg renders a millisecond offset as an ffmpeg -ss value in seconds.
func seekArg(ms int) string {
	return fmt.Sprintf("%.3f", float64(ms)/1000.0)
}

// buildFFmpegArgs builds the ffmpeg command arguments for one extraction
func buildFFmpegArgs(videoPath, previewPath, seek string) []string {
	args := []string{
		"-y", // Overwrite partial output from an earlier failed attempt
		"-loglevel", FFmpegLogLevel,
	}
	if seek != "" {
		args = append(args, "-ss", seek)
	}
	args = append(args,
		"-i", videoPath,
		"-frames:v", "1",
		"-vf", ScaleFilter,
		"-q:v", JPEGQuality,
		previewPath,
	)
	return args
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(result *model.PreviewResult) {
	if s.onUpdate != nil {
		s.onUpdate(result)
	}
}

// generateSweepID generates a unique sweep ID using UUID v7 for better uniqueness and time ordering
func generateSweepID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(SweepIDPrefix+"%d", time.Now().UnixNano())
	}
	return SweepIDPrefix + id.String()
}

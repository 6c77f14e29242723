package model

import "time"

// SweepStatus represents the status of a background preview sweep
type SweepStatus string

const (
	// SweepStatusPending means the sweep is created but the worker has not started
	SweepStatusPending SweepStatus = "Pending"

	// SweepStatusRunning means the worker is generating previews
	SweepStatusRunning SweepStatus = "Running"

	// SweepStatusCompleted means the worker walked the whole video list
	SweepStatusCompleted SweepStatus = "Completed"
)

// String returns the string representation of SweepStatus
func (ss SweepStatus) String() string {
	return string(ss)
}

// IsFinished returns true if the sweep worker has exited
func (ss SweepStatus) IsFinished() bool {
	return ss == SweepStatusCompleted
}

// PreviewSweep tracks one background pass over a dataset's video list.
// A sweep is fire-and-forget: it is never cancelled or retried, and a new
// sweep is started from scratch on every directory (re)load.
type PreviewSweep struct {
	ID         string
	DatasetDir string
	Status     SweepStatus
	Total      int // videos in the snapshot given to the worker
	Generated  int // previews written during this sweep
	Skipped    int // previews that already existed
	Failed     int // videos ffmpeg could not decode
	StartedAt  time.Time
	FinishedAt time.Time
}

// PreviewResult is the per-video completion notification posted from the
// sweep worker back to the UI layer.
type PreviewResult struct {
	SweepID     string
	VideoPath   string
	PreviewPath string
	OK          bool
}

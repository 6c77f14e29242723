package metadata

// Package metadata implements the JSON sidecar store for per-video tags and
// notes: load/save with relative/absolute key translation at the disk
// boundary, timestamped history snapshots on every save, merging against the
// current video list, and tag normalization and counting utilities.

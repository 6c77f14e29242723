package preview

// Package preview generates still-frame thumbnails for dataset videos via the
// ffmpeg CLI. Preview files are keyed by an md5 hash of the video's
// dataset-relative path and written once; an existing preview is never
// regenerated, even if the source video changes. Generation runs as a
// sequential background sweep that posts per-item results back to the UI.

package platform

// Package platform contains OS/platform integration and filesystem glue:
// video discovery under the dataset directory, OS open/reveal for video
// files, and the export-to-text writer.

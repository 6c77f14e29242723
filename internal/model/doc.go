package model

// Package model defines domain data structures used across the app: metadata
// entries, video rows, and preview sweep state. Structures are designed for
// direct binding in the UI and explicit state transitions.

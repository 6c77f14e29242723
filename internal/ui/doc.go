package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the metadata store and the
// preview service and renders the video table, preview panel, dialogs, and
// status bar. All UI strings are localized via Localization.

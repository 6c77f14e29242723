package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconRefresh  = "⟳"
	IconSave     = "💾"
	IconExport   = "📤"
	IconEdit     = "✎"
	IconPlay     = "▶"
)

// Checkbox marks for the export column
const (
	CheckboxChecked   = "☑"
	CheckboxUnchecked = "☐"
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Table columns
const (
	ColCheck = iota
	ColFilename
	ColPath
	ColTags
	ColNotes

	ColumnCount
)

// Table column widths
const (
	CheckColWidth    float32 = 36
	FilenameColWidth float32 = 150
	PathColWidth     float32 = 280
	TagsColWidth     float32 = 170
	NotesColWidth    float32 = 220
)

// Preview panel sizing
const (
	PreviewMaxWidth  float32 = 320
	PreviewMaxHeight float32 = 240
)

// Edit dialog sizing
const (
	EditDialogWidth  float32 = 480
	EditDialogHeight float32 = 320
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 340
)

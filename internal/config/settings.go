package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLastDatasetDir   = "last_dataset_directory"
	KeyLanguage         = "app_language"
	KeyGeneratePreviews = "generate_previews"
	KeyPreviewSeekMs    = "preview_seek_ms"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultGeneratePreviews = true
	DefaultPreviewSeekMs    = 500

	MinPreviewSeekMs = 0
	MaxPreviewSeekMs = 60000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastDatasetDirectory returns the dataset directory from the previous
// session, or "" if none was ever selected.
func (s *Settings) GetLastDatasetDirectory() string {
	return s.app.Preferences().String(KeyLastDatasetDir)
}

// SetLastDatasetDirectory remembers the selected dataset directory
func (s *Settings) SetLastDatasetDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDatasetDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetGeneratePreviews returns whether background preview generation is enabled
func (s *Settings) GetGeneratePreviews() bool {
	return s.app.Preferences().BoolWithFallback(KeyGeneratePreviews, DefaultGeneratePreviews)
}

// SetGeneratePreviews toggles background preview generation
func (s *Settings) SetGeneratePreviews(enabled bool) {
	s.app.Preferences().SetBool(KeyGeneratePreviews, enabled)
}

// GetPreviewSeekMs returns the seek offset for preview frames in milliseconds
func (s *Settings) GetPreviewSeekMs() int {
	value := s.app.Preferences().IntWithFallback(KeyPreviewSeekMs, DefaultPreviewSeekMs)
	if value < MinPreviewSeekMs || value > MaxPreviewSeekMs {
		s.SetPreviewSeekMs(DefaultPreviewSeekMs)
		return DefaultPreviewSeekMs
	}
	return value
}

// SetPreviewSeekMs sets the seek offset for preview frames
func (s *Settings) SetPreviewSeekMs(ms int) {
	if ms < MinPreviewSeekMs {
		ms = MinPreviewSeekMs
	}
	if ms > MaxPreviewSeekMs {
		ms = MaxPreviewSeekMs
	}
	s.app.Preferences().SetInt(KeyPreviewSeekMs, ms)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

package config

import (
	"os"
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyBaseURL           = "base_url"
	KeyLanguage          = "app_language"
	KeyIllustrationWidth = "illustration_width"
)

// BaseURLEnv seeds the backend URL when no preference is stored yet
const BaseURLEnv = "BOCA_BASE_URL"

// Default values
const (
	DefaultBaseURL           = "http://localhost:8080"
	DefaultLanguage          = "system"
	DefaultIllustrationWidth = 200
)

// Illustration width bounds, in pixels
const (
	MinIllustrationWidth = 50
	MaxIllustrationWidth = 800
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBaseURL returns the backend base URL. When nothing is stored, the
// BOCA_BASE_URL environment variable is used, then DefaultBaseURL. The
// fallback is not persisted, so the variable is read on every run until a
// URL is saved explicitly.
func (s *Settings) GetBaseURL() string {
	if u := s.app.Preferences().String(KeyBaseURL); u != "" {
		return u
	}
	if u := strings.TrimRight(strings.TrimSpace(os.Getenv(BaseURLEnv)), "/"); u != "" {
		return u
	}
	return DefaultBaseURL
}

// SetBaseURL sets the backend base URL
func (s *Settings) SetBaseURL(u string) {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	if u == "" {
		u = DefaultBaseURL
	}
	s.app.Preferences().SetString(KeyBaseURL, u)
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

// GetIllustrationWidth returns the maximum width of step illustrations
func (s *Settings) GetIllustrationWidth() int {
	value := s.app.Preferences().Int(KeyIllustrationWidth)
	if value <= 0 {
		s.SetIllustrationWidth(DefaultIllustrationWidth)
		return DefaultIllustrationWidth
	}
	return value
}

// SetIllustrationWidth sets the maximum illustration width
func (s *Settings) SetIllustrationWidth(width int) {
	if width < MinIllustrationWidth {
		width = MinIllustrationWidth
	}
	if width > MaxIllustrationWidth {
		width = MaxIllustrationWidth
	}
	s.app.Preferences().SetInt(KeyIllustrationWidth, width)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"fr":     "Français",
	}
}

package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fromenjn/boca-recettes/internal/config"
)

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"http://localhost:8080", true},
		{"https://recipes.example.org/api", true},
		{"  http://localhost:8080  ", true},
		{"", false},
		{"localhost:8080", false},
		{"ftp://example.org", false},
		{"http://", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateBaseURL(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()
	t.Setenv(config.BaseURLEnv, "")
	a := test.NewApp()
	settings := config.NewSettings(a)
	sd := NewSettingsDialog(settings, a.NewWindow("settings"), NewLocalization(), nil)
	sd.loadCurrentSettings()
	return sd, settings
}

func TestSettingsDialog_LoadsCurrentValues(t *testing.T) {
	sd, _ := newTestSettingsDialog(t)

	assert.Equal(t, config.DefaultBaseURL, sd.baseURLEntry.Text)
	assert.Equal(t, "200", sd.widthEntry.Text)
	assert.Equal(t, "System Default", sd.languageSelect.Selected)
}

func TestSettingsDialog_Apply(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.baseURLEntry.SetText("http://recipes.local:9000/")
	sd.widthEntry.SetText("5000")
	sd.languageSelect.SetSelected("Français")

	require.NoError(t, sd.apply())
	assert.Equal(t, "http://recipes.local:9000", settings.GetBaseURL())
	assert.Equal(t, config.MaxIllustrationWidth, settings.GetIllustrationWidth())
	assert.Equal(t, "fr", settings.GetLanguage())
}

func TestSettingsDialog_InvalidURLStoresNothing(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.baseURLEntry.SetText("not a url")
	sd.widthEntry.SetText("300")

	assert.Error(t, sd.apply())
	assert.Equal(t, config.DefaultBaseURL, settings.GetBaseURL())
	assert.Equal(t, config.DefaultIllustrationWidth, settings.GetIllustrationWidth())
}

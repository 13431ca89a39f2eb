package ui

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fromenjn/boca-recettes/internal/config"
)

// SettingsDialog edits the backend URL, illustration width and language
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	onSaved      func()
	dialog       *dialog.ConfirmDialog

	// UI components
	baseURLEntry   *widget.Entry
	widthEntry     *widget.Entry
	languageSelect *widget.Select
	languageCodes  []string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings have been stored.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// ValidateBaseURL accepts absolute http and https URLs
func ValidateBaseURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return errors.New("URL must not be empty")
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL must include a host")
	}

	return nil
}

func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultBaseURL)
	sd.baseURLEntry.Validator = ValidateBaseURL

	sd.widthEntry = widget.NewEntry()
	sd.widthEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinIllustrationWidth, config.MaxIllustrationWidth))

	options := sd.settings.GetLanguageOptions()
	for code := range options {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)
	labels := make([]string, len(sd.languageCodes))
	for i, code := range sd.languageCodes {
		labels[i] = options[code]
	}
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyBaseURL)),
		sd.baseURLEntry,

		widget.NewLabel(loc.GetText(KeyIllustrationWidth)),
		sd.widthEntry,

		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetBaseURL())
	sd.widthEntry.SetText(strconv.Itoa(sd.settings.GetIllustrationWidth()))

	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
			return
		}
	}
	sd.languageSelect.ClearSelected()
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.apply(); err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", sd.localization.GetText(KeyInvalidURL), err), sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply stores the form values; nothing is stored when the URL is invalid
func (sd *SettingsDialog) apply() error {
	if err := ValidateBaseURL(sd.baseURLEntry.Text); err != nil {
		return err
	}
	sd.settings.SetBaseURL(sd.baseURLEntry.Text)

	if width, err := strconv.Atoi(strings.TrimSpace(sd.widthEntry.Text)); err == nil {
		sd.settings.SetIllustrationWidth(width)
	}

	if idx := sd.languageSelect.SelectedIndex(); idx >= 0 && idx < len(sd.languageCodes) {
		sd.settings.SetLanguage(sd.languageCodes[idx])
	}

	return nil
}

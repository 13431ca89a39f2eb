package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fromenjn/boca-recettes/internal/api"
	"github.com/fromenjn/boca-recettes/internal/config"
	"github.com/fromenjn/boca-recettes/internal/model"
	"github.com/fromenjn/boca-recettes/internal/platform"
)

// ServiceFactory builds the recipe service for a backend base URL
type ServiceFactory func(baseURL string) api.RecipeService

// RootUI composes the navigation bar and the active view
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	newService   ServiceFactory

	svc    api.RecipeService
	images *platform.ImageLoader

	active model.Destination
	view   View

	// UI components
	navBar *NavBar
	body   *fyne.Container
}

// NewRootUI creates the main UI and mounts the default destination
func NewRootUI(window fyne.Window, settings *config.Settings, newService ServiceFactory) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		newService:   newService,
		active:       model.DefaultDestination,
	}

	ui.connect()
	ui.setupUI()
	return ui
}

// Active returns the current destination
func (ui *RootUI) Active() model.Destination {
	return ui.active
}

// CurrentView returns the mounted view
func (ui *RootUI) CurrentView() View {
	return ui.view
}

// NavBar returns the navigation bar
func (ui *RootUI) NavBar() *NavBar {
	return ui.navBar
}

// Navigate switches to d. The previous view is closed and the new one is
// mounted from scratch, so every visit reloads its data.
func (ui *RootUI) Navigate(d model.Destination) {
	if d == ui.active && ui.view != nil {
		return
	}
	log.Printf("Navigating from %s to %s", ui.active, d)
	ui.active = d
	ui.navBar.SetActive(d)
	ui.mount()
}

// Close closes the mounted view
func (ui *RootUI) Close() {
	if ui.view != nil {
		ui.view.Close()
	}
}

// connect builds the API client and illustration loader from settings
func (ui *RootUI) connect() {
	baseURL := ui.settings.GetBaseURL()
	ui.svc = ui.newService(baseURL)
	ui.images = platform.NewImageLoader(baseURL, ui.settings.GetIllustrationWidth())
	log.Printf("Using recipe backend at %s", baseURL)
}

// setupUI creates and arranges all UI components, then mounts the view
func (ui *RootUI) setupUI() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()

	ui.navBar = NewNavBar(ui.localization, ui.active, ui.Navigate)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, ui.navBar.Container()),
		widget.NewSeparator(),
	)
	ui.body = container.NewStack()

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.body))
	ui.mount()
}

// mount replaces the current view with a fresh one for the active destination
func (ui *RootUI) mount() {
	if ui.view != nil {
		ui.view.Close()
	}

	switch ui.active {
	case model.DestinationRecipes:
		ui.view = NewRecipesView(ui.svc, ui.images, ui.localization)
	default:
		ui.view = NewIngredientsView(ui.svc, ui.images, ui.localization)
	}

	ui.body.Objects = []fyne.CanvasObject{ui.view.Container()}
	ui.body.Refresh()
	ui.view.Load()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range []string{"en", "fr"} {
		langCode := code
		name := ui.localization.GetAvailableLanguages()[code]
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange stores the language and rebuilds the UI texts
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	log.Printf("Language changed to %s", ui.localization.GetCurrentLanguage())
	ui.setupUI()
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.onSettingsSaved).Show()
}

// onSettingsSaved reconnects to the possibly new backend and remounts
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.connect()
	ui.setupUI()
}

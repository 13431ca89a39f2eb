package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It composes the navigation bar with the ingredients and recipes views, wires
// them to the recipe backend client and renders recipes, scaling results,
// errors and settings. All UI strings are localized via Localization.

package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconRefresh  = "⟳"
	IconScale    = "⚖"
)

// Text formats
const (
	StepNumberFormat = "%d. %s"
	IngredientFormat = "%s: %s %s"
)

// Layout sizing
const (
	SelectMinWidth          float32 = 220
	IngredientListMinHeight float32 = 140
	SettingsDialogWidth     float32 = 500
	SettingsDialogHeight    float32 = 320
)

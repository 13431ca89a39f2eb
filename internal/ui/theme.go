package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// KitchenTheme is a slightly tighter default theme with warm accent colours
type KitchenTheme struct{}

// NewKitchenTheme creates the application theme
func NewKitchenTheme() fyne.Theme {
	return &KitchenTheme{}
}

// Color returns theme colors
func (t *KitchenTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // errors and validation messages
	case theme.ColorNamePrimary:
		return color.RGBA{R: 214, G: 96, B: 39, A: 255} // active navigation, scale button
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 125, B: 50, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 22, B: 20, A: 255}
		}
		return color.RGBA{R: 253, G: 250, B: 245, A: 255} // paper
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *KitchenTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *KitchenTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *KitchenTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15
	}

	return theme.DefaultTheme().Size(name)
}

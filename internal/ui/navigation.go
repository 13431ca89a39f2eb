package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fromenjn/boca-recettes/internal/model"
)

// NavBar switches between the top-level destinations. It only tracks which
// destination is highlighted; RootUI owns the views.
type NavBar struct {
	localization *Localization
	active       model.Destination
	onSelect     func(model.Destination)

	buttons   map[model.Destination]*widget.Button
	container *fyne.Container
}

// NewNavBar creates a navigation bar with active highlighted
func NewNavBar(localization *Localization, active model.Destination, onSelect func(model.Destination)) *NavBar {
	n := &NavBar{
		localization: localization,
		active:       active,
		onSelect:     onSelect,
		buttons:      make(map[model.Destination]*widget.Button),
	}

	objects := make([]fyne.CanvasObject, 0, len(model.Destinations()))
	for _, d := range model.Destinations() {
		d := d
		btn := widget.NewButton("", func() {
			if n.onSelect != nil {
				n.onSelect(d)
			}
		})
		n.buttons[d] = btn
		objects = append(objects, btn)
	}
	n.container = container.NewHBox(objects...)

	n.RefreshTexts()
	return n
}

// Container returns the bar's canvas object
func (n *NavBar) Container() fyne.CanvasObject {
	return n.container
}

// Active returns the highlighted destination
func (n *NavBar) Active() model.Destination {
	return n.active
}

// SetActive highlights d
func (n *NavBar) SetActive(d model.Destination) {
	n.active = d
	n.applyImportance()
}

// Button returns the button for d, used by tests
func (n *NavBar) Button(d model.Destination) *widget.Button {
	return n.buttons[d]
}

// RefreshTexts updates button labels after a language change
func (n *NavBar) RefreshTexts() {
	for d, btn := range n.buttons {
		btn.SetText(n.localization.GetText(destinationKey(d)))
	}
	n.applyImportance()
}

func (n *NavBar) applyImportance() {
	for d, btn := range n.buttons {
		if d == n.active {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

func destinationKey(d model.Destination) string {
	if d == model.DestinationRecipes {
		return KeyRecipes
	}
	return KeyIngredients
}

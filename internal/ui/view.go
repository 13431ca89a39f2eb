package ui

import "fyne.io/fyne/v2"

// View is a top-level screen mounted by RootUI. A view fetches its own data
// when loaded and drops every pending result once closed.
type View interface {
	// Container returns the view's root canvas object
	Container() fyne.CanvasObject

	// Load starts fetching the view's data in the background
	Load()

	// Close cancels in-flight requests; the view is not reused afterwards
	Close()
}

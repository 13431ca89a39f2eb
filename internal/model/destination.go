package model

import "fmt"

// Destination is one of the two top-level views
type Destination string

const (
	DestinationIngredients Destination = "ingredients"
	DestinationRecipes     Destination = "recipes"
)

// DefaultDestination is the view shown at startup
const DefaultDestination = DestinationIngredients

// Destinations returns all destinations in navigation order
func Destinations() []Destination {
	return []Destination{DestinationIngredients, DestinationRecipes}
}

// String returns the string representation of Destination
func (d Destination) String() string {
	return string(d)
}

// Label returns the English navigation label
func (d Destination) Label() string {
	switch d {
	case DestinationIngredients:
		return "Ingredients"
	case DestinationRecipes:
		return "Recipes"
	default:
		return "Unknown"
	}
}

// ParseDestination converts a string into a Destination
func ParseDestination(s string) (Destination, error) {
	for _, d := range Destinations() {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown destination: %q", s)
}

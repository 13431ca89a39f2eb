package model

import (
	"strconv"
)

// Illustration is an image attached to a recipe step
type Illustration struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Filepath    string `json:"filepath"` // URL, path relative to the backend, or local file
}

// Step is one instruction of a recipe
type Step struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Instructions  string         `json:"instructions"`
	Illustrations []Illustration `json:"illustration"`
}

// Ingredient is a single (name, quantity, unit) line within a recipe
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is a read-only snapshot of a recipe as returned by the backend.
// Ingredient and step order is display-meaningful and kept as received.
type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
}

// DisplayQuantity returns the quantity without trailing zeros (400, 1.5, 0.25)
func (i Ingredient) DisplayQuantity() string {
	return strconv.FormatFloat(i.Quantity, 'f', -1, 64)
}

// IngredientNames returns the names of the recipe's ingredient lines in
// recipe order. A name listed twice is returned once.
func (r *Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	seen := make(map[string]bool, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if seen[ing.Name] {
			continue
		}
		seen[ing.Name] = true
		names = append(names, ing.Name)
	}
	return names
}

// Ingredient returns the first ingredient line with the given name
func (r *Recipe) Ingredient(name string) (Ingredient, bool) {
	for _, ing := range r.Ingredients {
		if ing.Name == name {
			return ing, true
		}
	}
	return Ingredient{}, false
}

// HasIngredient reports whether the recipe lists the named ingredient
func (r *Recipe) HasIngredient(name string) bool {
	_, ok := r.Ingredient(name)
	return ok
}

// FindRecipe returns the recipe with the given ID from a list
func FindRecipe(recipes []Recipe, id string) (*Recipe, bool) {
	for i := range recipes {
		if recipes[i].ID == id {
			return &recipes[i], true
		}
	}
	return nil, false
}

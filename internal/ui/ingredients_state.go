package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/fromenjn/boca-recettes/internal/model"
)

// IngredientsState is the view-state of the ingredients view. It keeps the
// unfiltered lists as loaded and derives the selector contents from the
// current selection; filtering never goes back to the network.
type IngredientsState struct {
	Status  model.LoadStatus
	LoadErr error

	allIngredients []string
	allRecipes     []model.Recipe

	// User selections
	RecipeID   string
	Ingredient string
	Quantity   float64

	// Last scale request
	Scale    model.ScaleStatus
	ScaleErr error
	Scaled   *model.Recipe
}

// NewIngredientsState returns the state of a freshly mounted view
func NewIngredientsState() IngredientsState {
	return IngredientsState{
		Status: model.LoadStatusLoading,
		Scale:  model.ScaleStatusIdle,
	}
}

// SetLoaded stores both lists and leaves the loading state
func (s *IngredientsState) SetLoaded(ingredients []string, recipes []model.Recipe) {
	s.allIngredients = ingredients
	s.allRecipes = recipes
	s.Status = model.LoadStatusReady
	s.LoadErr = nil
}

// SetLoadError records a failed initial load
func (s *IngredientsState) SetLoadError(err error) {
	s.Status = model.LoadStatusError
	s.LoadErr = err
}

// AllIngredients returns the global ingredient list as loaded
func (s IngredientsState) AllIngredients() []string {
	return s.allIngredients
}

// AllRecipes returns the recipe list as loaded
func (s IngredientsState) AllRecipes() []model.Recipe {
	return s.allRecipes
}

// SelectedRecipe returns the selected recipe, if any
func (s IngredientsState) SelectedRecipe() (*model.Recipe, bool) {
	if s.RecipeID == "" {
		return nil, false
	}
	return model.FindRecipe(s.allRecipes, s.RecipeID)
}

// VisibleIngredients returns the ingredient selector options: the selected
// recipe's ingredient names in recipe order, or the full list.
func (s IngredientsState) VisibleIngredients() []string {
	if r, ok := s.SelectedRecipe(); ok {
		return r.IngredientNames()
	}
	return s.allIngredients
}

// VisibleRecipes returns the recipe selector options: the recipes containing
// the selected ingredient, or all recipes.
func (s IngredientsState) VisibleRecipes() []model.Recipe {
	if s.Ingredient == "" {
		return s.allRecipes
	}
	recipes := make([]model.Recipe, 0, len(s.allRecipes))
	for i := range s.allRecipes {
		if s.allRecipes[i].HasIngredient(s.Ingredient) {
			recipes = append(recipes, s.allRecipes[i])
		}
	}
	return recipes
}

// SelectRecipe selects a recipe by ID; an empty ID clears the selection.
// A selected ingredient the recipe does not contain is dropped.
func (s *IngredientsState) SelectRecipe(id string) {
	s.RecipeID = id
	if s.Ingredient != "" && !containsString(s.VisibleIngredients(), s.Ingredient) {
		s.Ingredient = ""
	}
}

// SelectIngredient selects an ingredient; an empty name clears the selection.
// A selected recipe that lacks the ingredient is dropped.
func (s *IngredientsState) SelectIngredient(name string) {
	s.Ingredient = name
	if s.RecipeID == "" || name == "" {
		return
	}
	if r, ok := s.SelectedRecipe(); !ok || !r.HasIngredient(name) {
		s.RecipeID = ""
	}
}

// ClearSelection resets both selectors to their full lists
func (s *IngredientsState) ClearSelection() {
	s.RecipeID = ""
	s.Ingredient = ""
}

// SetQuantityText parses the quantity entry. Empty or unparsable input
// counts as 0; a decimal comma is accepted.
func (s *IngredientsState) SetQuantityText(text string) {
	s.Quantity = parseQuantity(text)
}

// Validate checks that a scale request can be sent
func (s *IngredientsState) Validate() error {
	if s.RecipeID == "" || s.Ingredient == "" || s.Quantity <= 0 {
		return &ValidationError{Message: ValidationMessage}
	}
	return nil
}

// BeginScale clears the previous result and error before a new request
func (s *IngredientsState) BeginScale() {
	s.Scale = model.ScaleStatusPending
	s.ScaleErr = nil
	s.Scaled = nil
}

// FinishScale stores the outcome of a scale request. The result always
// replaces the previous one; a failure leaves no stale recipe behind.
func (s *IngredientsState) FinishScale(recipe *model.Recipe, err error) {
	if err != nil {
		s.Scale = model.ScaleStatusFailed
		s.ScaleErr = err
		s.Scaled = nil
		return
	}
	s.Scale = model.ScaleStatusSucceeded
	s.ScaleErr = nil
	s.Scaled = recipe
}

func parseQuantity(text string) float64 {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if text == "" {
		return 0
	}
	q, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	return q
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

package apitest

import (
	"testing"

	"github.com/fromenjn/boca-recettes/internal/model"
)

func TestScaleRecipe_WithConstraint(t *testing.T) {
	recipe := SampleRecipes()[0]

	if err := ScaleRecipe(&recipe, "flour", 400); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := map[string]float64{"flour": 400, "milk": 600, "egg": 4}
	for _, ing := range recipe.Ingredients {
		if ing.Quantity != expected[ing.Name] {
			t.Errorf("Expected %s quantity %v, got %v", ing.Name, expected[ing.Name], ing.Quantity)
		}
	}
}

func TestScaleRecipe_NoConstraint(t *testing.T) {
	recipe := SampleRecipes()[0]

	if err := ScaleRecipe(&recipe, "", 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if recipe.Ingredients[0].Quantity != 200 {
		t.Errorf("Expected flour quantity 200, got %v", recipe.Ingredients[0].Quantity)
	}
}

func TestScaleRecipe_IngredientNotFound(t *testing.T) {
	recipe := SampleRecipes()[0]

	if err := ScaleRecipe(&recipe, "sugar", 100); err == nil {
		t.Error("Expected error due to missing ingredient, got none")
	}
}

func TestAllIngredients_Unique(t *testing.T) {
	names := allIngredients(SampleRecipes())
	expected := []string{"flour", "milk", "egg", "butter"}

	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Name %d: expected %s, got %s", i, expected[i], names[i])
		}
	}
}

func TestCloneRecipe_Independent(t *testing.T) {
	original := SampleRecipes()[0]
	clone := cloneRecipe(original)
	clone.Ingredients[0].Quantity = 1
	clone.Steps[0].Illustrations[0].Description = "changed"

	if original.Ingredients[0].Quantity != 200 {
		t.Error("Clone shares ingredient storage with the original")
	}
	if original.Steps[0].Illustrations[0].Description != "batter" {
		t.Error("Clone shares illustration storage with the original")
	}

	var empty model.Recipe
	if c := cloneRecipe(empty); len(c.Steps) != 0 {
		t.Errorf("Expected no steps, got %d", len(c.Steps))
	}
}

package api

import (
	"context"

	"github.com/fromenjn/boca-recettes/internal/model"
)

// RecipeService defines the backend operations the views depend on.
type RecipeService interface {
	// ListIngredients returns every known ingredient name, in backend order
	ListIngredients(ctx context.Context) ([]string, error)

	// ListRecipes returns every recipe, in backend order
	ListRecipes(ctx context.Context) ([]model.Recipe, error)

	// GetRecipe returns one recipe. A nil scale returns it unscaled;
	// otherwise the backend rescales every ingredient line so that the
	// named ingredient reaches the requested quantity.
	GetRecipe(ctx context.Context, recipeID string, scale *Scale) (*model.Recipe, error)
}

// Scale asks the backend to rescale a recipe around one ingredient
type Scale struct {
	Ingredient string
	Quantity   float64
}

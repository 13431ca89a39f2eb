package ui

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fromenjn/boca-recettes/internal/api/apitest"
	"github.com/fromenjn/boca-recettes/internal/model"
	"github.com/fromenjn/boca-recettes/internal/platform"
)

func TestFormatIngredientLine(t *testing.T) {
	tests := []struct {
		ing  model.Ingredient
		want string
	}{
		{model.Ingredient{Name: "flour", Quantity: 400, Unit: "g"}, "flour: 400 g"},
		{model.Ingredient{Name: "salt", Quantity: 1.5, Unit: "tsp"}, "salt: 1.5 tsp"},
		{model.Ingredient{Name: "egg", Quantity: 2}, "egg: 2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatIngredientLine(tt.ing))
	}
}

func TestRecipeCard_WithoutLoader(t *testing.T) {
	test.NewApp()
	recipe := apitest.SampleRecipes()[0]

	card := NewRecipeCard(context.Background(), &recipe, recipe.Name, NewLocalization(), nil)

	assert.Same(t, &recipe, card.Recipe())
	assert.Equal(t, "Pancakes", card.Title())
	assert.Equal(t, []string{"flour: 200 g", "milk: 300 ml", "egg: 2 pieces"}, card.IngredientLines())
	assert.Equal(t, []string{"1. Mix", "2. Cook"}, card.StepTitles())
	require.Len(t, card.illustrations, 1)
	assert.False(t, card.illustrations[0].Visible())
}

func TestRecipeCard_LoadsIllustration(t *testing.T) {
	test.NewApp()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/batter.png" {
			http.NotFound(w, r)
			return
		}
		img := image.NewRGBA(image.Rect(0, 0, 400, 100))
		img.Set(0, 0, color.White)
		w.Header().Set("Content-Type", "image/png")
		_ = png.Encode(w, img)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recipe := apitest.SampleRecipes()[0]
	card := NewRecipeCard(ctx, &recipe, recipe.Name, NewLocalization(), platform.NewImageLoader(srv.URL, 200))

	require.Len(t, card.illustrations, 1)
	img := card.illustrations[0]
	require.Eventually(t, func() bool { return img.Visible() }, waitFor, tick)
	assert.Equal(t, 200, img.Image.Bounds().Dx())
	assert.Equal(t, 50, img.Image.Bounds().Dy())
}

package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fromenjn/boca-recettes/internal/api"
	"github.com/fromenjn/boca-recettes/internal/api/apitest"
	"github.com/fromenjn/boca-recettes/internal/config"
)

func TestNewClient_BaseURL(t *testing.T) {
	assert.Equal(t, "http://example.org/api", api.NewClient("http://example.org/api/").BaseURL())
	assert.Equal(t, config.DefaultBaseURL, api.NewClient("").BaseURL())
}

func TestListIngredients_PreservesOrder(t *testing.T) {
	srv := apitest.NewServer(t, apitest.SampleRecipes())
	srv.SetIngredients([]string{"zucchini", "apple", "milk"})
	client := api.NewClient(srv.URL)

	names, err := client.ListIngredients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"zucchini", "apple", "milk"}, names)
	assert.Equal(t, 1, srv.Count(api.OpListIngredients))
}

func TestListRecipes_PreservesOrder(t *testing.T) {
	srv := apitest.NewServer(t, apitest.SampleRecipes())
	client := api.NewClient(srv.URL)

	recipes, err := client.ListRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Pancakes", recipes[0].Name)
	assert.Equal(t, "Omelette", recipes[1].Name)
	assert.Equal(t, []string{"flour", "milk", "egg"}, recipes[0].IngredientNames())
	require.Len(t, recipes[0].Steps, 2)
	assert.Equal(t, "Mix", recipes[0].Steps[0].Name)
	assert.Equal(t, "batter", recipes[0].Steps[0].Illustrations[0].Description)
}

func TestGetRecipe_Unscaled(t *testing.T) {
	srv := apitest.NewServer(t, apitest.SampleRecipes())
	client := api.NewClient(srv.URL)

	recipe, err := client.GetRecipe(context.Background(), "2", nil)
	require.NoError(t, err)
	assert.Equal(t, "Omelette", recipe.Name)
	assert.Empty(t, srv.LastQuery(api.OpGetRecipe))
}

func TestGetRecipe_ScaledDoublesEveryLine(t *testing.T) {
	srv := apitest.NewServer(t, apitest.SampleRecipes())
	client := api.NewClient(srv.URL)

	original := apitest.SampleRecipes()[0]
	scaled, err := client.GetRecipe(context.Background(), "1", &api.Scale{Ingredient: "flour", Quantity: 400})
	require.NoError(t, err)

	query := srv.LastQuery(api.OpGetRecipe)
	assert.Equal(t, "flour", query.Get("ingredient"))
	assert.Equal(t, "400", query.Get("quantity"))

	require.Len(t, scaled.Ingredients, len(original.Ingredients))
	for i, line := range scaled.Ingredients {
		assert.Equal(t, original.Ingredients[i].Name, line.Name)
		assert.Equal(t, original.Ingredients[i].Unit, line.Unit)
		assert.Equal(t, original.Ingredients[i].Quantity*2, line.Quantity)
	}
	flour, ok := scaled.Ingredient("flour")
	require.True(t, ok)
	assert.Equal(t, 400.0, flour.Quantity)
	assert.Equal(t, original.Steps, scaled.Steps)
}

func TestGetRecipe_EmptyID(t *testing.T) {
	client := api.NewClient("http://127.0.0.1:1")
	_, err := client.GetRecipe(context.Background(), "", nil)
	assert.Error(t, err)
}

func TestNetworkError_Status(t *testing.T) {
	srv := apitest.NewServer(t, apitest.SampleRecipes())
	client := api.NewClient(srv.URL)

	srv.FailWith(api.OpListRecipes, http.StatusInternalServerError)
	_, err := client.ListRecipes(context.Background())
	require.Error(t, err)

	var ne *api.NetworkError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, http.StatusInternalServerError, ne.StatusCode)
	assert.Equal(t, "failed to fetch recipes: Internal Server Error", err.Error())

	_, err = client.GetRecipe(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.True(t, api.IsNetworkError(err))
	assert.Equal(t, "failed to fetch recipe missing: Not Found", err.Error())
}

func TestNetworkError_Transport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := api.NewClient(url).ListIngredients(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsNetworkError(err))
	assert.Contains(t, err.Error(), "failed to fetch ingredients")
}

func TestRequestIDHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(api.RequestIDHeader)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := api.NewClient(srv.URL, api.WithHTTPClient(srv.Client())).ListIngredients(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 36)
}

func TestGetRecipe_CancelledContext(t *testing.T) {
	srv := apitest.NewServer(t, apitest.SampleRecipes())
	release := srv.Hold(api.OpGetRecipe)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.NewClient(srv.URL).GetRecipe(ctx, "1", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/fromenjn/boca-recettes/internal/config"
	"github.com/fromenjn/boca-recettes/internal/model"
)

// API endpoints
const (
	epIngredients = "/ingredients"
	epRecipes     = "/recipes"
	epRecipe      = "/recipe/"
)

// Query parameters for scaling
const (
	paramIngredient = "ingredient"
	paramQuantity   = "quantity"
)

// RequestIDHeader carries a per-request identifier, useful to correlate
// client and backend logs.
const RequestIDHeader = "X-Request-Id"

// Client talks to the recipe backend over HTTP+JSON. Each call issues exactly
// one request: no retries and no caching.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// NewClient sets up an API client for the given base URL.
// An empty base URL falls back to config.DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(config.DefaultBaseURL, "/")
	}

	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL without trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListIngredients fetches all ingredient names from /ingredients
func (c *Client) ListIngredients(ctx context.Context) ([]string, error) {
	ingredients := make([]string, 0)
	if err := c.get(ctx, OpListIngredients, "", epIngredients, nil, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

// ListRecipes fetches all recipes from /recipes
func (c *Client) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	recipes := make([]model.Recipe, 0)
	if err := c.get(ctx, OpListRecipes, "", epRecipes, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe fetches a single recipe, optionally scaled by the backend.
func (c *Client) GetRecipe(ctx context.Context, recipeID string, scale *Scale) (*model.Recipe, error) {
	if recipeID == "" {
		return nil, fmt.Errorf("recipe id must not be empty")
	}

	var q url.Values
	if scale != nil {
		q = url.Values{}
		if scale.Ingredient != "" {
			q.Set(paramIngredient, scale.Ingredient)
		}
		q.Set(paramQuantity, strconv.FormatFloat(scale.Quantity, 'f', -1, 64))
	}

	var recipe model.Recipe
	if err := c.get(ctx, OpGetRecipe, recipeID, epRecipe+url.PathEscape(recipeID), q, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// get issues a GET request and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, op Op, recipeID, endpoint string, q url.Values, dst interface{}) error {
	target := c.baseURL + endpoint
	if len(q) > 0 {
		target = target + "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")

	log.Printf("GET %s (request %s)", target, requestID)

	res, err := c.client.Do(req)
	if err != nil {
		log.Printf("Request %s failed: %v", requestID, err)
		return &NetworkError{Op: op, RecipeID: recipeID, Err: err}
	}
	defer res.Body.Close()

	if err := expectSuccess(res, op, recipeID); err != nil {
		log.Printf("Request %s returned status %d", requestID, res.StatusCode)
		return err
	}

	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", op, err)
	}

	return nil
}

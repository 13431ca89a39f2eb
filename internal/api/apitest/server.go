// Package apitest provides an in-memory stand-in for the recipe backend,
// served over httptest. It implements the same endpoints and scaling rule as
// the real backend and lets tests inject failures, count requests and hold
// responses back.
package apitest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/fromenjn/boca-recettes/internal/api"
	"github.com/fromenjn/boca-recettes/internal/model"
)

var errIngredientNotFound = errors.New("ingredient constraint not found in recipe")

// Server is a fake recipe backend
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	recipes     []model.Recipe
	ingredients []string // nil means derived from recipes
	failures    map[api.Op]int
	counts      map[api.Op]int
	queries     map[api.Op]url.Values
	gates       map[api.Op]chan struct{}
}

// NewServer starts a fake backend serving the given recipes. The server is
// closed when the test ends.
func NewServer(t testing.TB, recipes []model.Recipe) *Server {
	t.Helper()

	s := &Server{
		recipes:  cloneRecipes(recipes),
		failures: make(map[api.Op]int),
		counts:   make(map[api.Op]int),
		queries:  make(map[api.Op]url.Values),
		gates:    make(map[api.Op]chan struct{}),
	}

	r := mux.NewRouter()
	r.HandleFunc("/ingredients", s.handleIngredients).Methods(http.MethodGet)
	r.HandleFunc("/recipes", s.handleRecipes).Methods(http.MethodGet)
	r.HandleFunc("/recipe/{recipeID}", s.handleRecipe).Methods(http.MethodGet)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// SetIngredients overrides the ingredient list, which is otherwise derived
// from the recipes.
func (s *Server) SetIngredients(names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ingredients = append([]string(nil), names...)
}

// FailWith makes every following request for op answer with the given status.
// A status of 0 clears the failure.
func (s *Server) FailWith(op api.Op, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, op)
		return
	}
	s.failures[op] = status
}

// Hold blocks responses for op until the returned release func is called.
func (s *Server) Hold(op api.Op) (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gates[op] = gate
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			if s.gates[op] == gate {
				delete(s.gates, op)
			}
			s.mu.Unlock()
			close(gate)
		})
	}
}

// Count returns how many requests were received for op
func (s *Server) Count(op api.Op) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[op]
}

// LastQuery returns the query string of the last request for op
func (s *Server) LastQuery(op api.Op) url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries[op]
}

func (s *Server) handleIngredients(w http.ResponseWriter, r *http.Request) {
	if !s.begin(w, r, api.OpListIngredients) {
		return
	}

	s.mu.Lock()
	names := s.ingredients
	if names == nil {
		names = allIngredients(s.recipes)
	}
	names = append([]string{}, names...)
	s.mu.Unlock()

	writeJSON(w, names)
}

func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	if !s.begin(w, r, api.OpListRecipes) {
		return
	}

	s.mu.Lock()
	recipes := cloneRecipes(s.recipes)
	s.mu.Unlock()

	writeJSON(w, recipes)
}

func (s *Server) handleRecipe(w http.ResponseWriter, r *http.Request) {
	if !s.begin(w, r, api.OpGetRecipe) {
		return
	}

	recipeID := mux.Vars(r)["recipeID"]
	ingredient := r.URL.Query().Get("ingredient")

	var quantity float64
	if qs := r.URL.Query().Get("quantity"); qs != "" {
		parsed, err := strconv.ParseFloat(qs, 64)
		if err != nil {
			http.Error(w, "invalid 'quantity' query parameter", http.StatusBadRequest)
			return
		}
		quantity = parsed
	}

	s.mu.Lock()
	found, ok := model.FindRecipe(s.recipes, recipeID)
	var recipe model.Recipe
	if ok {
		recipe = cloneRecipe(*found)
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "recipe not found", http.StatusNotFound)
		return
	}

	if err := ScaleRecipe(&recipe, ingredient, quantity); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, recipe)
}

// begin records the request, waits for a pending Hold and applies injected
// failures. It returns false if the response was already written.
func (s *Server) begin(w http.ResponseWriter, r *http.Request, op api.Op) bool {
	s.mu.Lock()
	s.counts[op]++
	s.queries[op] = r.URL.Query()
	gate := s.gates[op]
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return false
		}
	}

	s.mu.Lock()
	status := s.failures[op]
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return false
	}
	return true
}

// ScaleRecipe rescales every ingredient line so that the named ingredient
// reaches quantity. An empty name or a quantity <= 0 leaves the recipe as is.
func ScaleRecipe(recipe *model.Recipe, name string, quantity float64) error {
	if name == "" || quantity <= 0 {
		return nil
	}

	base, ok := recipe.Ingredient(name)
	if !ok || base.Quantity == 0 {
		return errIngredientNotFound
	}

	ratio := quantity / base.Quantity
	for i := range recipe.Ingredients {
		recipe.Ingredients[i].Quantity *= ratio
	}
	return nil
}

func allIngredients(recipes []model.Recipe) []string {
	names := make([]string, 0)
	seen := make(map[string]bool)
	for i := range recipes {
		for _, name := range recipes[i].IngredientNames() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to write response", http.StatusInternalServerError)
	}
}

func cloneRecipes(recipes []model.Recipe) []model.Recipe {
	out := make([]model.Recipe, len(recipes))
	for i := range recipes {
		out[i] = cloneRecipe(recipes[i])
	}
	return out
}

func cloneRecipe(r model.Recipe) model.Recipe {
	r.Ingredients = append([]model.Ingredient(nil), r.Ingredients...)
	steps := make([]model.Step, len(r.Steps))
	for i, st := range r.Steps {
		st.Illustrations = append([]model.Illustration(nil), st.Illustrations...)
		steps[i] = st
	}
	r.Steps = steps
	return r
}

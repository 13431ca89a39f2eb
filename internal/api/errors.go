package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Op names the backend operation that failed
type Op string

const (
	OpListIngredients Op = "ingredients"
	OpListRecipes     Op = "recipes"
	OpGetRecipe       Op = "recipe"
)

// NetworkError is returned when the backend answers with a non-success
// status or cannot be reached at all. StatusCode is 0 for transport failures.
type NetworkError struct {
	Op         Op
	RecipeID   string
	StatusCode int
	Status     string // status text, e.g. "Not Found"
	Err        error  // underlying transport error, if any
}

func (e *NetworkError) Error() string {
	target := string(e.Op)
	if e.RecipeID != "" {
		target = target + " " + e.RecipeID
	}

	reason := e.Status
	if reason == "" && e.Err != nil {
		reason = e.Err.Error()
	}
	if reason == "" {
		reason = "unknown error"
	}

	return fmt.Sprintf("failed to fetch %s: %s", target, reason)
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError checks if the given error is (or wraps) a NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// expectSuccess checks if the response has a 2xx status and returns a
// NetworkError carrying the status text if not.
func expectSuccess(res *http.Response, op Op, recipeID string) error {
	code := res.StatusCode
	if code >= 200 && code < 300 {
		return nil
	}

	return &NetworkError{
		Op:         op,
		RecipeID:   recipeID,
		StatusCode: code,
		Status:     statusText(res),
	}
}

// statusText extracts "Not Found" from "404 Not Found"
func statusText(res *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode)))
	if text == "" {
		text = http.StatusText(res.StatusCode)
	}
	return text
}

package api

// Package api implements the HTTP client for the recipe backend. It maps the
// three JSON endpoints (/ingredients, /recipes, /recipe/{id}) to typed results
// and turns non-success responses and transport failures into NetworkError.

package model

// Package model defines domain data structures used across the app: recipes
// and their ingredient lines, steps and illustrations as served by the recipe
// backend, plus the small enums the views use to track navigation and
// loading state.

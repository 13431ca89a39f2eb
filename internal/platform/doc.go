package platform

// Package platform contains OS and network glue the UI relies on: resolving
// and loading step illustrations from the backend or the local filesystem.

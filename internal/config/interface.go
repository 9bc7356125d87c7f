package config

import "context"

// Loader is the interface for a format-specific pin file loader.
type Loader interface {
	// Load reads pin files from the given paths (files or directories),
	// translates them into the format-agnostic model, and returns it.
	// Paths holding no files in the loader's format yield an empty model,
	// not an error.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

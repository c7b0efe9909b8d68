package config

import "context"

// Loader is the interface for a format-specific profile loader.
type Loader interface {
	// Load reads the profile at path and translates it into the
	// format-agnostic Profile model.
	Load(ctx context.Context, path string) (*Profile, error)

	// Extensions lists the file extensions, including the leading dot, that
	// this loader understands.
	Extensions() []string
}

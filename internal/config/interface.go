package config

import "context"

// Loader is the interface for a format-specific scene loader.
type Loader interface {
	// Load reads the given files or directories, translates every scene
	// document found into the format-agnostic model and merges them.
	Load(ctx context.Context, paths ...string) (*Scene, error)

	// Extensions lists the file extensions the loader understands,
	// including the leading dot.
	Extensions() []string
}

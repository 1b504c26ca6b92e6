package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/nestdi/internal/config"
	"github.com/vk/nestdi/internal/ctxlog"
	"github.com/vk/nestdi/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL scene loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load parses every .hcl file reachable from paths and merges the results.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Scene, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no HCL scene files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	parts := make([]*config.Scene, 0, len(files))
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		part, err := l.translateFile(ctx, &root)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
		parts = append(parts, part)
	}

	scene, err := config.Merge(parts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("HCL loading complete.", "families", len(scene.Families), "queries", len(scene.Queries), "detach", len(scene.Detach))
	return scene, nil
}

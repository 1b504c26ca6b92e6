package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/nestdi/internal/config"
	"github.com/vk/nestdi/internal/ctxlog"
	"github.com/vk/nestdi/internal/dicontext"
	"github.com/vk/nestdi/internal/inmemorytree"
	"github.com/vk/nestdi/internal/registry"
)

const (
	carrierClass       = "DIContext"
	registrationClass  = "Registration"
	multiregisterClass = "Multiregistration"
)

// Build validates scene, creates its nodes and attaches them. families may be
// nil, in which case family names are not canonicalized.
func Build(ctx context.Context, scene *config.Scene, families *registry.Registry) (*Session, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting scene construction.")

	if scene == nil {
		return nil, errors.New("scene is nil")
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	s := &Session{
		logger:   logger,
		tree:     inmemorytree.New(logger),
		index:    dicontext.NewIndex(logger, families),
		families: families,
	}

	// First pass: create the detached node tree.
	root, err := s.createNode(ctx, nil, scene.Root)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Node creation complete.", "contexts", s.mounted)

	// Second pass: attach, firing every enter hook.
	if err := s.tree.SetRoot(root); err != nil {
		return nil, fmt.Errorf("failed to attach scene root: %w", err)
	}
	logger.Info("Build: Scene attached.", "nodes", s.tree.Len(), "contexts", s.index.Len())
	return s, nil
}

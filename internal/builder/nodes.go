package builder

import (
	"context"
	"fmt"

	"github.com/vk/nestdi/internal/config"
	"github.com/vk/nestdi/internal/ctxlog"
	"github.com/vk/nestdi/internal/dicontext"
	"github.com/vk/nestdi/internal/hosttree"
	"github.com/vk/nestdi/internal/inmemorytree"
)

// createNode builds spec and its subtree under parent. Nodes are linked while
// still outside any tree, so no hook fires yet.
func (s *Session) createNode(ctx context.Context, parent *inmemorytree.Node, spec *config.NodeSpec) (*inmemorytree.Node, error) {
	n := inmemorytree.NewNode(spec.Name, spec.Class)
	if spec.RegistrationName != "" {
		n.SetRegistrationName(spec.RegistrationName)
	}
	for k, v := range spec.Props {
		n.Props[k] = propToGo(v)
	}
	if parent != nil {
		if err := s.tree.AddChild(parent, n); err != nil {
			return nil, err
		}
	}
	path := n.Path().String()
	logger := ctxlog.FromContext(ctx).With("node", path)
	logger.Debug("Creating node.", "class", n.Class())

	if spec.Context != nil {
		if err := s.mountContext(n, spec.Context); err != nil {
			return nil, fmt.Errorf("node %s: %w", path, err)
		}
		logger.Debug("Mounted DI context.", "logging_name", spec.Context.LoggingName)
	}

	for _, r := range spec.Registrations {
		hook := &dicontext.Registration{
			Index:          s.index,
			TypeName:       r.Type,
			ID:             r.ID,
			IntoOwnContext: r.IntoOwnContext,
		}
		if err := s.addHelper(n, r.Name, registrationClass, hook); err != nil {
			return nil, err
		}
	}
	for _, m := range spec.Multiregistrations {
		hook := &dicontext.Multiregistration{
			Index:          s.index,
			Family:         m.Family,
			IntoOwnContext: m.IntoOwnContext,
		}
		if err := s.addHelper(n, m.Name, multiregisterClass, hook); err != nil {
			return nil, err
		}
	}

	for _, child := range spec.Children {
		if _, err := s.createNode(ctx, n, child); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// mountContext adds the carrier child that attaches a context with owner as
// its anchor.
func (s *Session) mountContext(owner *inmemorytree.Node, spec *config.ContextSpec) error {
	cfg := dicontext.Config{
		LoggingName:     spec.LoggingName,
		ReMultiregister: spec.ReMultiregister,
	}
	for _, k := range spec.ReRegister {
		cfg.ReRegister = append(cfg.ReRegister, dicontext.Key(k.Type, k.ID))
	}
	c, err := dicontext.NewContext(s.index, cfg)
	if err != nil {
		return err
	}

	carrier := inmemorytree.NewNode(config.ContextCarrierName, carrierClass)
	carrier.AddHook(c)
	if err := s.tree.AddChild(owner, carrier); err != nil {
		return err
	}
	s.mounted++
	return nil
}

// addHelper adds a registration helper child carrying hook under owner.
func (s *Session) addHelper(owner *inmemorytree.Node, name, class string, hook hosttree.Hook) error {
	helper := inmemorytree.NewNode(name, class)
	helper.AddHook(hook)
	return s.tree.AddChild(owner, helper)
}

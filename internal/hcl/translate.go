package hcl

import (
	"context"
	"fmt"

	"github.com/vk/nestdi/internal/config"
	"github.com/vk/nestdi/internal/ctxlog"
)

// translateFile converts one decoded file into a partial scene.
func (l *Loader) translateFile(ctx context.Context, root *fileRoot) (*config.Scene, error) {
	scene := &config.Scene{}

	for _, f := range root.Families {
		scene.Families = append(scene.Families, &config.FamilyDef{
			Name:        f.Name,
			Aliases:     f.Aliases,
			Description: f.Description,
		})
	}

	switch len(root.Nodes) {
	case 0:
	case 1:
		n, err := l.translateNode(ctx, root.Nodes[0])
		if err != nil {
			return nil, err
		}
		scene.Root = n
	default:
		return nil, fmt.Errorf("only one top-level node block is allowed, found %d", len(root.Nodes))
	}

	for _, q := range root.Queries {
		spec, err := translateQuery(q)
		if err != nil {
			return nil, err
		}
		scene.Queries = append(scene.Queries, spec)
	}

	if isExprDefined(ctx, root.Detach, "detach") {
		paths, err := pathList(root.Detach)
		if err != nil {
			return nil, fmt.Errorf("detach: %w", err)
		}
		scene.Detach = paths
	}
	return scene, nil
}

// translateNode converts a node block and its descendants.
func (l *Loader) translateNode(ctx context.Context, b *nodeBlock) (*config.NodeSpec, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Translating node block.", "name", b.Name, "class", b.Class)

	n := &config.NodeSpec{
		Name:             b.Name,
		Class:            b.Class,
		RegistrationName: b.RegistrationName,
	}

	if isExprDefined(ctx, b.Props, "props") {
		props, err := evalProps(b.Props)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", b.Name, err)
		}
		n.Props = props
	}

	if b.Context != nil {
		c := &config.ContextSpec{
			LoggingName:     b.Context.LoggingName,
			ReMultiregister: b.Context.ReMultiregister,
		}
		for _, k := range b.Context.ReRegister {
			c.ReRegister = append(c.ReRegister, config.KeySpec{Type: k.Type, ID: k.ID})
		}
		n.Context = c
	}

	for _, r := range b.Registers {
		n.Registrations = append(n.Registrations, &config.RegisterSpec{
			Name:           r.Name,
			Type:           r.Type,
			ID:             r.ID,
			IntoOwnContext: r.IntoOwnContext,
		})
	}
	for _, m := range b.Multiregisters {
		n.Multiregistrations = append(n.Multiregistrations, &config.MultiregisterSpec{
			Name:           m.Name,
			Family:         m.Family,
			IntoOwnContext: m.IntoOwnContext,
		})
	}

	for _, child := range b.Children {
		c, err := l.translateNode(ctx, child)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
	}
	return n, nil
}

// translateQuery resolves which of the mutually exclusive query attributes
// was set.
func translateQuery(q *queryBlock) (*config.QuerySpec, error) {
	spec := &config.QuerySpec{Name: q.Name, ID: q.ID, AfterDetach: q.AfterDetach}

	var kinds []config.QueryKind
	if q.Lookup != nil {
		kinds = append(kinds, config.QueryLookup)
		spec.Target = *q.Lookup
	}
	if q.TryLookup != nil {
		kinds = append(kinds, config.QueryTryLookup)
		spec.Target = *q.TryLookup
	}
	if q.Collect != nil {
		kinds = append(kinds, config.QueryCollect)
		spec.Target = *q.Collect
	}
	if q.Nearest != nil && *q.Nearest {
		kinds = append(kinds, config.QueryNearest)
	}
	if len(kinds) != 1 {
		return nil, fmt.Errorf("query %q: exactly one of lookup, try_lookup, collect or nearest must be set, found %d", q.Name, len(kinds))
	}
	spec.Kind = kinds[0]

	from, err := exprPath(q.From)
	if err != nil {
		return nil, fmt.Errorf("query %q: from: %w", q.Name, err)
	}
	spec.From = from
	return spec, nil
}

package yamlloader

import (
	"fmt"

	"github.com/vk/nestdi/internal/config"
	"github.com/vk/nestdi/internal/nodeid"
)

func translate(doc *document) (*config.Scene, error) {
	scene := &config.Scene{}
	for _, f := range doc.Families {
		scene.Families = append(scene.Families, &config.FamilyDef{
			Name:        f.Name,
			Aliases:     f.Aliases,
			Description: f.Description,
		})
	}
	if doc.Root != nil {
		root, err := translateNode(doc.Root)
		if err != nil {
			return nil, err
		}
		scene.Root = root
	}
	for _, q := range doc.Queries {
		spec, err := translateQuery(q)
		if err != nil {
			return nil, err
		}
		scene.Queries = append(scene.Queries, spec)
	}
	for _, raw := range doc.Detach {
		p, err := nodeid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("detach: %w", err)
		}
		scene.Detach = append(scene.Detach, p.String())
	}
	return scene, nil
}

func translateNode(d *nodeDoc) (*config.NodeSpec, error) {
	n := &config.NodeSpec{
		Name:             d.Name,
		Class:            d.Class,
		RegistrationName: d.RegistrationName,
	}
	if len(d.Props) > 0 {
		props, err := propsToCty(d.Props)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", d.Name, err)
		}
		n.Props = props
	}
	if d.Context != nil {
		c := &config.ContextSpec{
			LoggingName:     d.Context.LoggingName,
			ReMultiregister: d.Context.ReMultiregister,
		}
		for _, k := range d.Context.ReRegister {
			c.ReRegister = append(c.ReRegister, config.KeySpec{Type: k.Type, ID: k.ID})
		}
		n.Context = c
	}
	for _, r := range d.Register {
		n.Registrations = append(n.Registrations, &config.RegisterSpec{
			Name:           r.Name,
			Type:           r.Type,
			ID:             r.ID,
			IntoOwnContext: r.IntoOwnContext,
		})
	}
	for _, m := range d.Multiregister {
		n.Multiregistrations = append(n.Multiregistrations, &config.MultiregisterSpec{
			Name:           m.Name,
			Family:         m.Family,
			IntoOwnContext: m.IntoOwnContext,
		})
	}
	for _, child := range d.Children {
		c, err := translateNode(child)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
	}
	return n, nil
}

func translateQuery(q *queryDoc) (*config.QuerySpec, error) {
	spec := &config.QuerySpec{Name: q.Name, ID: q.ID, From: q.From, AfterDetach: q.AfterDetach}

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
	if q.Nearest {
		kinds = append(kinds, config.QueryNearest)
	}
	if len(kinds) != 1 {
		return nil, fmt.Errorf("query %q: exactly one of lookup, try_lookup, collect or nearest must be set, found %d", q.Name, len(kinds))
	}
	spec.Kind = kinds[0]
	return spec, nil
}

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vk/nestdi/internal/nodeid"
)

// ContextCarrierName is the name of the node that carries a context under its
// owner. No user node may take it.
const ContextCarrierName = "di_context"

// Validate checks the scene's structure. It reports every problem found
// rather than stopping at the first.
func (s *Scene) Validate() error {
	var errs []error
	if s.Root == nil {
		errs = append(errs, errors.New("scene has no root node"))
	} else {
		errs = append(errs, validateNodes(s.Root)...)
	}

	seenFamilies := make(map[string]bool)
	for _, f := range s.Families {
		if strings.TrimSpace(f.Name) == "" {
			errs = append(errs, errors.New("family declaration has an empty name"))
			continue
		}
		if seenFamilies[f.Name] {
			errs = append(errs, fmt.Errorf("family %q declared twice", f.Name))
		}
		seenFamilies[f.Name] = true
	}

	seenQueries := make(map[string]bool)
	for _, q := range s.Queries {
		if seenQueries[q.Name] {
			errs = append(errs, fmt.Errorf("query %q defined twice", q.Name))
		}
		seenQueries[q.Name] = true
		if err := q.validate(); err != nil {
			errs = append(errs, err)
		}
	}

	for _, p := range s.Detach {
		if _, err := nodeid.Parse(p); err != nil {
			errs = append(errs, fmt.Errorf("detach: %w", err))
		}
	}
	return errors.Join(errs...)
}

func validateNodes(root *NodeSpec) []error {
	var errs []error
	root.Walk(func(path []string, n *NodeSpec) {
		where := strings.Join(path, nodeid.Separator)
		if err := nodeid.ValidateName(n.Name); err != nil {
			errs = append(errs, fmt.Errorf("node %s: %w", where, err))
		}
		names := make(map[string]string)
		claim := func(name, what string) {
			if err := nodeid.ValidateName(name); err != nil {
				errs = append(errs, fmt.Errorf("node %s: %s: %w", where, what, err))
				return
			}
			if prev, ok := names[name]; ok {
				errs = append(errs, fmt.Errorf("node %s: %s %q clashes with %s", where, what, name, prev))
				return
			}
			names[name] = what
		}
		if n.Context != nil {
			claim(ContextCarrierName, "context")
			for _, k := range n.Context.ReRegister {
				if k.Type == "" {
					errs = append(errs, fmt.Errorf("node %s: re_register entry has an empty type", where))
				}
			}
		}
		for _, r := range n.Registrations {
			claim(r.Name, "register block")
		}
		for _, m := range n.Multiregistrations {
			claim(m.Name, "multiregister block")
		}
		for _, c := range n.Children {
			if c.Name == ContextCarrierName {
				errs = append(errs, fmt.Errorf("node %s: child name %q is reserved", where, ContextCarrierName))
				continue
			}
			claim(c.Name, "child node")
		}
	})
	return errs
}

func (q *QuerySpec) validate() error {
	if q.Name == "" {
		return errors.New("query has an empty name")
	}
	if !slices.Contains(QueryKinds, q.Kind) {
		return fmt.Errorf("query %q: unknown kind %q", q.Name, q.Kind)
	}
	if _, err := nodeid.Parse(q.From); err != nil {
		return fmt.Errorf("query %q: from: %w", q.Name, err)
	}
	if q.Kind != QueryNearest && q.Target == "" {
		return fmt.Errorf("query %q: %s needs a target", q.Name, q.Kind)
	}
	return nil
}

package dicontext

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/vk/nestdi/internal/hosttree"
)

// Context is one node of the DI context tree. It implements hosttree.Hook and
// attaches itself when the host node carrying it enters the tree.
type Context struct {
	id     uuid.UUID
	index  *Index
	logger *slog.Logger
	cfg    Config

	// Set while attached.
	node     hosttree.Node
	anchor   hosttree.Node
	parentID uuid.UUID
	attached bool

	registered      map[RegistrationKey]hosttree.Node
	multiregistered map[string][]hosttree.Node

	childrenForKey    map[RegistrationKey]*idSet
	childrenForFamily map[string]*idSet
}

var _ hosttree.Hook = (*Context)(nil)

// NewContext creates a detached context bound to index. Family names in the
// re-multiregistration list are canonicalized against the index's family
// table, so an unknown family fails here rather than at lookup time.
func NewContext(index *Index, cfg Config) (*Context, error) {
	families := make([]string, 0, len(cfg.ReMultiregister))
	for _, name := range cfg.ReMultiregister {
		canonical, err := index.canonical(name)
		if err != nil {
			return nil, fmt.Errorf("context %q: re-multiregister: %w", cfg.LoggingName, err)
		}
		if !slices.Contains(families, canonical) {
			families = append(families, canonical)
		}
	}
	cfg.ReMultiregister = families
	cfg.ReRegister = slices.Clone(cfg.ReRegister)

	id := uuid.New()
	logger := index.logger.With("context_id", id.String())
	if cfg.LoggingName != "" {
		logger = logger.With("context", cfg.LoggingName)
	}

	return &Context{
		id:                id,
		index:             index,
		logger:            logger,
		cfg:               cfg,
		registered:        make(map[RegistrationKey]hosttree.Node),
		multiregistered:   make(map[string][]hosttree.Node),
		childrenForKey:    make(map[RegistrationKey]*idSet),
		childrenForFamily: make(map[string]*idSet),
	}, nil
}

// ID returns the context's identity.
func (c *Context) ID() uuid.UUID { return c.id }

// LoggingName returns the configured verbose logging name.
func (c *Context) LoggingName() string { return c.cfg.LoggingName }

// Config returns a copy of the context's configuration, with family names
// canonicalized.
func (c *Context) Config() Config {
	return Config{
		LoggingName:     c.cfg.LoggingName,
		ReRegister:      slices.Clone(c.cfg.ReRegister),
		ReMultiregister: slices.Clone(c.cfg.ReMultiregister),
	}
}

// Attached reports whether the context is currently part of the live tree.
func (c *Context) Attached() bool { return c.attached }

// Anchor returns the host node the context is mounted under.
func (c *Context) Anchor() (hosttree.Node, bool) {
	return c.anchor, c.anchor != nil
}

// Parent returns the parent context. A parent that has since detached is
// reported as absent.
func (c *Context) Parent() (*Context, bool) {
	p := c.parentContext()
	return p, p != nil
}

func (c *Context) parentContext() *Context {
	if c.parentID == uuid.Nil {
		return nil
	}
	p, ok := c.index.context(c.parentID)
	if !ok {
		return nil
	}
	return p
}

// Register stores node under its registration type name (see TypeNameOf)
// and id.
func (c *Context) Register(node hosttree.Node, id string) {
	c.RegisterWithType(node, TypeNameOf(node), id)
}

// RegisterWithType stores node under (typeName, id), replacing any node
// previously stored under that exact key.
func (c *Context) RegisterWithType(node hosttree.Node, typeName, id string) {
	if c.cfg.LoggingName != "" {
		c.logger.Info("Registering node.", "type", typeName, "id", id, "node", describe(node))
	}
	c.registered[Key(typeName, id)] = node
}

// Unregister removes the registration under (typeName, id) if it still
// refers to node. A later registration that replaced node is left alone.
func (c *Context) Unregister(node hosttree.Node, typeName, id string) bool {
	key := Key(typeName, id)
	current, ok := c.registered[key]
	if !ok || !hosttree.Same(current, node) {
		return false
	}
	delete(c.registered, key)
	if c.cfg.LoggingName != "" {
		c.logger.Info("Unregistered node.", "type", typeName, "id", id, "node", describe(node))
	}
	return true
}

// Multiregister appends node to family. Duplicates are kept.
func (c *Context) Multiregister(node hosttree.Node, family string) error {
	canonical, err := c.index.canonical(family)
	if err != nil {
		return err
	}
	if c.cfg.LoggingName != "" {
		c.logger.Info("Multiregistering node.", "family", canonical, "node", describe(node))
	}
	c.multiregistered[canonical] = append(c.multiregistered[canonical], node)
	return nil
}

// MultiregisterAutoType appends node to the family named after its class.
func (c *Context) MultiregisterAutoType(node hosttree.Node) error {
	return c.Multiregister(node, node.Class())
}

// Unmultiregister removes one occurrence of node from family.
func (c *Context) Unmultiregister(node hosttree.Node, family string) bool {
	canonical, err := c.index.canonical(family)
	if err != nil {
		return false
	}
	nodes := c.multiregistered[canonical]
	for i, n := range nodes {
		if hosttree.Same(n, node) {
			nodes = append(nodes[:i], nodes[i+1:]...)
			if len(nodes) == 0 {
				delete(c.multiregistered, canonical)
			} else {
				c.multiregistered[canonical] = nodes
			}
			return true
		}
	}
	return false
}

// canonical resolves a family spelling through the index's family table.
func (idx *Index) canonical(family string) (string, error) {
	if idx.families == nil {
		return family, nil
	}
	return idx.families.Canonical(family)
}

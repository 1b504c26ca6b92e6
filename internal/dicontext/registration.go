package dicontext

import (
	"github.com/vk/nestdi/internal/hosttree"
)

// contextFor picks the context a producer registers into: the nearest one
// including a context the producer itself owns when intoOwnContext is set,
// otherwise the nearest one strictly above the producer.
func (idx *Index) contextFor(producer hosttree.Node, intoOwnContext bool) (*Context, error) {
	c, ok := idx.Nearest(producer, !intoOwnContext)
	if !ok {
		return nil, &MissingContextError{Node: describe(producer), Class: producer.Class()}
	}
	return c, nil
}

// Register registers producer into its nearest context. An empty typeName
// uses the producer's registration type name.
func (idx *Index) Register(producer hosttree.Node, typeName, id string, intoOwnContext bool) (*Context, error) {
	c, err := idx.contextFor(producer, intoOwnContext)
	if err != nil {
		return nil, err
	}
	if typeName == "" {
		typeName = TypeNameOf(producer)
	}
	c.RegisterWithType(producer, typeName, id)
	return c, nil
}

// Multiregister appends producer to family in its nearest context. An empty
// family uses the producer's class.
func (idx *Index) Multiregister(producer hosttree.Node, family string, intoOwnContext bool) (*Context, error) {
	c, err := idx.contextFor(producer, intoOwnContext)
	if err != nil {
		return nil, err
	}
	if family == "" {
		family = producer.Class()
	}
	if err := c.Multiregister(producer, family); err != nil {
		return nil, err
	}
	return c, nil
}

// Registration is a hook for a helper node placed directly under a producer.
// When the helper enters the tree it registers the producer (the helper's
// parent) into the nearest context; when it exits it takes the registration
// back out of that same context.
type Registration struct {
	Index          *Index
	TypeName       string
	ID             string
	IntoOwnContext bool

	into     *Context
	producer hosttree.Node
	typeName string
}

var _ hosttree.Hook = (*Registration)(nil)

// Entered implements hosttree.Hook.
func (r *Registration) Entered(n hosttree.Node) {
	producer, ok := n.Parent()
	if !ok {
		r.Index.logger.Warn("Registration helper has no producer to register.", "node", n.Name())
		return
	}
	c, err := r.Index.Register(producer, r.TypeName, r.ID, r.IntoOwnContext)
	if err != nil {
		r.Index.logger.Warn("Tried to register a node with no context in its parentage.", "error", err)
		return
	}
	r.into = c
	r.producer = producer
	r.typeName = r.TypeName
	if r.typeName == "" {
		r.typeName = TypeNameOf(producer)
	}
}

// Exited implements hosttree.Hook.
func (r *Registration) Exited(hosttree.Node) {
	if r.into == nil {
		return
	}
	r.into.Unregister(r.producer, r.typeName, r.ID)
	r.into = nil
	r.producer = nil
}

// Multiregistration is the multi-registration counterpart of Registration.
// An empty Family uses the producer's class.
type Multiregistration struct {
	Index          *Index
	Family         string
	IntoOwnContext bool

	into     *Context
	producer hosttree.Node
	family   string
}

var _ hosttree.Hook = (*Multiregistration)(nil)

// Entered implements hosttree.Hook.
func (m *Multiregistration) Entered(n hosttree.Node) {
	producer, ok := n.Parent()
	if !ok {
		m.Index.logger.Warn("Multiregistration helper has no producer to register.", "node", n.Name())
		return
	}
	c, err := m.Index.Multiregister(producer, m.Family, m.IntoOwnContext)
	if err != nil {
		m.Index.logger.Warn("Multiregistration skipped.", "node", describe(producer), "error", err)
		return
	}
	m.into = c
	m.producer = producer
	m.family = m.Family
	if m.family == "" {
		m.family = producer.Class()
	}
}

// Exited implements hosttree.Hook.
func (m *Multiregistration) Exited(hosttree.Node) {
	if m.into == nil {
		return
	}
	m.into.Unmultiregister(m.producer, m.family)
	m.into = nil
	m.producer = nil
}

package inmemorytree

import (
	"github.com/google/uuid"
	"github.com/vk/nestdi/internal/hosttree"
	"github.com/vk/nestdi/internal/nodeid"
)

// Node is a single vertex of the host tree.
type Node struct {
	id    uuid.UUID
	name  string
	class string
	// registrationName overrides class as the registration type name when set.
	registrationName string
	// Props holds free-form node properties loaded from a scene file.
	Props map[string]any

	parent   *Node
	children []*Node
	hooks    []hosttree.Hook

	// tree is set while the node is part of a live tree.
	tree   *Tree
	inside bool
}

// NewNode creates a detached node. An empty class defaults to "Node".
func NewNode(name, class string) *Node {
	if class == "" {
		class = "Node"
	}
	return &Node{
		id:    uuid.New(),
		name:  name,
		class: class,
		Props: make(map[string]any),
	}
}

// ID implements hosttree.Node.
func (n *Node) ID() uuid.UUID { return n.id }

// Name implements hosttree.Node.
func (n *Node) Name() string { return n.name }

// Class implements hosttree.Node.
func (n *Node) Class() string { return n.class }

// Parent implements hosttree.Node.
func (n *Node) Parent() (hosttree.Node, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

// InsideTree implements hosttree.Node.
func (n *Node) InsideTree() bool { return n.inside }

// RegistrationName reports the custom registration type name, if one was set
// with SetRegistrationName.
func (n *Node) RegistrationName() (string, bool) {
	return n.registrationName, n.registrationName != ""
}

// SetRegistrationName sets the name the node registers under instead of its
// class. An empty name restores the class.
func (n *Node) SetRegistrationName(name string) {
	n.registrationName = name
}

// ParentNode returns the concrete parent, or nil.
func (n *Node) ParentNode() *Node { return n.parent }

// Children returns a copy of the node's children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Child returns the direct child with the given name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.children {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// AddHook attaches a lifecycle hook. Hooks added to a node that is already
// inside the tree are not retroactively notified.
func (n *Node) AddHook(h hosttree.Hook) {
	n.hooks = append(n.hooks, h)
}

// Hooks returns the attached hooks.
func (n *Node) Hooks() []hosttree.Hook {
	return n.hooks
}

// Path returns the node's address from its topmost ancestor.
func (n *Node) Path() nodeid.Path {
	var segs []string
	for cur := n; cur != nil; cur = cur.parent {
		segs = append(segs, cur.name)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return nodeid.Path{Segments: segs}
}

// String returns the node's path, for logs.
func (n *Node) String() string {
	return n.Path().String()
}

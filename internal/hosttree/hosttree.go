// Package hosttree defines the contract between the DI registry and the tree
// of nodes it is overlaid on.
//
// # Why Host Tree Exists
//
// The registry never owns nodes. Nodes are created, parented and destroyed by
// the host tree, and the registry only needs four things from it:
//   - **Identity:** a stable, comparable handle per node
//   - **Parent lookup:** walking upward to find the nearest context
//   - **Liveness:** whether a node is still part of the live tree
//   - **Lifecycle notifications:** entered / exited, exactly once each
//
// Keeping that surface in its own package lets the registry be tested against
// small fakes and lets any tree implementation drive it.
//
// # Ordering Contract
//
// Implementations MUST notify Entered top-down (a parent before its
// descendants) and Exited bottom-up (descendants before their parent). A
// context resolves its parent context at Entered time, so the ancestor's
// context must already be registered when a descendant's hook runs.
//
// # Thread-Safety
//
// The tree and everything hooked into it are confined to the goroutine that
// mutates the tree. Implementations are not required to be safe for
// concurrent mutation.
//
// # Typical Implementation
//
// See internal/inmemorytree for the reference implementation.
package hosttree

import "github.com/google/uuid"

// Node is the view of a host tree node that the registry consumes.
type Node interface {
	// ID returns the node's stable identity. Two Node values with the same ID
	// refer to the same host node.
	ID() uuid.UUID

	// Name returns the node's name among its siblings.
	Name() string

	// Class returns the node's intrinsic type name. It is the default
	// registration type name for the node.
	Class() string

	// Parent returns the node's parent, or false for a tree root or a
	// detached node.
	Parent() (Node, bool)

	// InsideTree reports whether the node is currently part of the live tree.
	// A registry holding a reference to a node that is no longer inside the
	// tree must treat that reference as stale.
	InsideTree() bool
}

// Hook receives lifecycle notifications for the node it is attached to.
type Hook interface {
	// Entered is called once each time the node joins the live tree.
	Entered(n Node)

	// Exited is called once each time the node leaves the live tree.
	Exited(n Node)
}

// HookFunc adapts a pair of plain functions to the Hook interface. Either
// function may be nil.
type HookFunc struct {
	OnEnter func(n Node)
	OnExit  func(n Node)
}

// Entered implements Hook.
func (h HookFunc) Entered(n Node) {
	if h.OnEnter != nil {
		h.OnEnter(n)
	}
}

// Exited implements Hook.
func (h HookFunc) Exited(n Node) {
	if h.OnExit != nil {
		h.OnExit(n)
	}
}

// Same reports whether a and b refer to the same host node. Nil values are
// only the same as each other.
func Same(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

// Ancestors returns n's ancestors, nearest first.
func Ancestors(n Node) []Node {
	var out []Node
	for p, ok := n.Parent(); ok; p, ok = p.Parent() {
		out = append(out, p)
	}
	return out
}

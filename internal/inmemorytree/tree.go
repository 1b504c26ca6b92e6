package inmemorytree

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/nestdi/internal/nodeid"
)

// Tree owns a single root and tracks every node currently inside it.
type Tree struct {
	root   *Node
	nodes  map[uuid.UUID]*Node
	logger *slog.Logger
}

// New creates an empty tree. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Tree {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tree{
		nodes:  make(map[uuid.UUID]*Node),
		logger: logger,
	}
}

// Root returns the tree root, or nil.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of nodes inside the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Get returns a live node by identity.
func (t *Tree) Get(id uuid.UUID) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// SetRoot makes n the tree root and enters its whole subtree. The tree must
// be empty and n must be detached.
func (t *Tree) SetRoot(n *Node) error {
	if t.root != nil {
		return fmt.Errorf("tree already has root %q", t.root.name)
	}
	if n.parent != nil || n.tree != nil {
		return fmt.Errorf("node %q is already attached", n.name)
	}
	t.root = n
	t.logger.Debug("Setting tree root.", "root", n.name)
	t.enter(n)
	return nil
}

// AddChild appends child under parent. If parent is inside this tree, the
// child's subtree enters the tree top-down before AddChild returns.
func (t *Tree) AddChild(parent, child *Node) error {
	if child.parent != nil || child.tree != nil || child == t.root {
		return fmt.Errorf("node %q is already attached", child.name)
	}
	if err := nodeid.ValidateName(child.name); err != nil {
		return err
	}
	if _, exists := parent.Child(child.name); exists {
		return fmt.Errorf("node %q already has a child named %q", parent.Path(), child.name)
	}
	for cur := parent; cur != nil; cur = cur.parent {
		if cur == child {
			return fmt.Errorf("cannot add %q under its own descendant %q", child.name, parent.Path())
		}
	}
	if parent.tree != nil && parent.tree != t {
		return fmt.Errorf("parent %q belongs to another tree", parent.Path())
	}

	child.parent = parent
	parent.children = append(parent.children, child)
	if parent.inside {
		t.enter(child)
	}
	return nil
}

// Remove detaches n from its parent (or clears the root when n is the root).
// If n was inside the tree, its subtree exits bottom-up first.
func (t *Tree) Remove(n *Node) error {
	if n == t.root {
		t.exit(n)
		t.root = nil
		return nil
	}
	parent := n.parent
	if parent == nil {
		return fmt.Errorf("node %q is not attached", n.name)
	}
	if n.inside {
		t.exit(n)
	}
	for i, c := range parent.children {
		if c == n {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	n.parent = nil
	return nil
}

// Move detaches n and re-adds it under newParent, firing exit then enter
// notifications for its subtree.
func (t *Tree) Move(n, newParent *Node) error {
	if err := t.Remove(n); err != nil {
		return err
	}
	return t.AddChild(newParent, n)
}

// Lookup resolves a path starting at the root.
func (t *Tree) Lookup(p nodeid.Path) (*Node, bool) {
	if t.root == nil || p.IsZero() || p.Segments[0] != t.root.name {
		return nil, false
	}
	cur := t.root
	for _, seg := range p.Segments[1:] {
		next, ok := cur.Child(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Walk visits every node inside the tree pre-order. Returning false from fn
// skips that node's children.
func (t *Tree) Walk(fn func(n *Node) bool) {
	if t.root == nil {
		return
	}
	var visit func(n *Node)
	visit = func(n *Node) {
		if !fn(n) {
			return
		}
		for _, c := range n.Children() {
			visit(c)
		}
	}
	visit(t.root)
}

// enter marks n live and notifies its hooks, then recurses into a snapshot of
// its children so hooks may add nodes without disturbing the walk.
func (t *Tree) enter(n *Node) {
	n.tree = t
	n.inside = true
	t.nodes[n.id] = n
	t.logger.Debug("Node entered tree.", "path", n.Path().String(), "class", n.class)
	for _, h := range n.hooks {
		h.Entered(n)
	}
	for _, c := range n.Children() {
		t.enter(c)
	}
}

// exit notifies children last-to-first, then n itself. n still reports
// InsideTree during its own hooks.
func (t *Tree) exit(n *Node) {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		t.exit(children[i])
	}
	for _, h := range n.hooks {
		h.Exited(n)
	}
	t.logger.Debug("Node exited tree.", "path", n.Path().String())
	delete(t.nodes, n.id)
	n.inside = false
	n.tree = nil
}

package builder

import (
	"fmt"
	"log/slog"

	"github.com/vk/nestdi/internal/dicontext"
	"github.com/vk/nestdi/internal/inmemorytree"
	"github.com/vk/nestdi/internal/nodeid"
	"github.com/vk/nestdi/internal/registry"
)

// Session is a built scene: the live tree and the DI index over it.
type Session struct {
	logger   *slog.Logger
	tree     *inmemorytree.Tree
	index    *dicontext.Index
	families *registry.Registry
	mounted  int
}

// Tree returns the host tree.
func (s *Session) Tree() *inmemorytree.Tree { return s.tree }

// Index returns the DI index.
func (s *Session) Index() *dicontext.Index { return s.index }

// Families returns the family table, which may be nil.
func (s *Session) Families() *registry.Registry { return s.families }

// Node resolves a dot-separated path to a live node.
func (s *Session) Node(path string) (*inmemorytree.Node, error) {
	p, err := nodeid.Parse(path)
	if err != nil {
		return nil, err
	}
	n, ok := s.tree.Lookup(p)
	if !ok {
		return nil, fmt.Errorf("no node at %s", p)
	}
	return n, nil
}

// ContextAt returns the context anchored exactly at path.
func (s *Session) ContextAt(path string) (*dicontext.Context, error) {
	n, err := s.Node(path)
	if err != nil {
		return nil, err
	}
	c, ok := s.index.ContextOf(n)
	if !ok {
		return nil, fmt.Errorf("node %s owns no DI context", path)
	}
	return c, nil
}

// Detach removes the node at path and its subtree from the tree.
func (s *Session) Detach(path string) error {
	n, err := s.Node(path)
	if err != nil {
		return fmt.Errorf("detach: %w", err)
	}
	if err := s.tree.Remove(n); err != nil {
		return fmt.Errorf("detach %s: %w", path, err)
	}
	s.logger.Info("Detached node.", "path", path, "contexts", s.index.Len())
	return nil
}

// Close detaches the whole tree, leaving the index empty.
func (s *Session) Close() {
	if root := s.tree.Root(); root != nil {
		_ = s.tree.Remove(root)
	}
}

package dicontext

import (
	"io"
	"log/slog"

	"github.com/stretchr/testify/require"
	"github.com/vk/nestdi/internal/hosttree"
	"github.com/vk/nestdi/internal/inmemorytree"
	"github.com/vk/nestdi/internal/registry"
)

// testingT is satisfied by both *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

// world is a live host tree with an index, ready for contexts to be mounted.
type world struct {
	t     testingT
	tree  *inmemorytree.Tree
	index *Index
	root  *inmemorytree.Node
}

// newWorld builds a tree holding just a root node. When families are given,
// the index canonicalizes against a frozen table declaring them.
func newWorld(t testingT, families ...string) *world {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var reg *registry.Registry
	if len(families) > 0 {
		reg = registry.New()
		for _, f := range families {
			reg.Declare(f)
		}
		reg.Freeze()
	}

	tr := inmemorytree.New(logger)
	root := inmemorytree.NewNode("root", "")
	require.NoError(t, tr.SetRoot(root))
	return &world{t: t, tree: tr, index: NewIndex(logger, reg), root: root}
}

// node adds a plain node under parent.
func (w *world) node(parent *inmemorytree.Node, name, class string) *inmemorytree.Node {
	w.t.Helper()
	n := inmemorytree.NewNode(name, class)
	require.NoError(w.t, w.tree.AddChild(parent, n))
	return n
}

// mount attaches a new context under anchor, carried by a node named "di".
func (w *world) mount(anchor *inmemorytree.Node, cfg Config) *Context {
	w.t.Helper()
	c, _ := w.mountNamed(anchor, "di", cfg)
	return c
}

func (w *world) mountNamed(anchor *inmemorytree.Node, name string, cfg Config) (*Context, *inmemorytree.Node) {
	w.t.Helper()
	c, err := NewContext(w.index, cfg)
	require.NoError(w.t, err)
	carrier := inmemorytree.NewNode(name, "DIContext")
	carrier.AddHook(c)
	require.NoError(w.t, w.tree.AddChild(anchor, carrier))
	return c, carrier
}

// names maps nodes to their names for readable assertions.
func names(nodes []hosttree.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name())
	}
	return out
}

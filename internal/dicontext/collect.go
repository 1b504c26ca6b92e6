package dicontext

import "github.com/vk/nestdi/internal/hosttree"

// CollectAll gathers every live node multiregistered under family that is
// reachable from this context: its own list in registration order, then its
// forwarding children's, then the same from each ancestor in turn. The only
// error is an unknown family when the index has a family table.
func (c *Context) CollectAll(family string) ([]hosttree.Node, error) {
	canonical, err := c.index.canonical(family)
	if err != nil {
		return nil, err
	}
	return c.collect(canonical, ignoreSet{}, nil), nil
}

func (c *Context) collect(family string, ignore ignoreSet, out []hosttree.Node) []hosttree.Node {
	out = c.collectWithoutParents(family, ignore, out)
	parent := c.parentContext()
	if parent == nil {
		return out
	}
	ignore.add(c.id)
	return parent.collect(family, ignore, out)
}

func (c *Context) collectWithoutParents(family string, ignore ignoreSet, out []hosttree.Node) []hosttree.Node {
	for _, n := range c.multiregistered[family] {
		if live(n) {
			out = append(out, n)
		}
	}
	for _, childID := range c.childrenForFamily[family].items() {
		if ignore.has(childID) {
			continue
		}
		if child, ok := c.index.context(childID); ok {
			out = child.collectWithoutParents(family, ignore, out)
		}
	}
	return out
}

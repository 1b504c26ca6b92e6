package dicontext

import "github.com/vk/nestdi/internal/hosttree"

// TryLookup resolves (typeName, id) from this context. It returns false when
// no reachable context holds a live node under that key.
func (c *Context) TryLookup(typeName, id string) (hosttree.Node, bool) {
	return c.lookup(Key(typeName, id), ignoreSet{})
}

// TryLookupDefault resolves the default (empty id) instance of typeName.
func (c *Context) TryLookupDefault(typeName string) (hosttree.Node, bool) {
	return c.TryLookup(typeName, "")
}

// Lookup is TryLookup for dependencies that must exist. A miss is reported
// as a *RequiredLookupError naming the key.
func (c *Context) Lookup(typeName, id string) (hosttree.Node, error) {
	if n, ok := c.TryLookup(typeName, id); ok {
		return n, nil
	}
	return nil, &RequiredLookupError{TypeName: typeName, ID: id}
}

// LookupDefault is Lookup for the default instance of typeName.
func (c *Context) LookupDefault(typeName string) (hosttree.Node, error) {
	return c.Lookup(typeName, "")
}

// MustLookup is Lookup that panics on a miss.
func (c *Context) MustLookup(typeName, id string) hosttree.Node {
	n, err := c.Lookup(typeName, id)
	if err != nil {
		panic(err)
	}
	return n
}

// lookup searches this context and its forwarding children, then climbs to
// the parent carrying this context in the ignore-set.
func (c *Context) lookup(key RegistrationKey, ignore ignoreSet) (hosttree.Node, bool) {
	if n, ok := c.lookupWithoutParents(key, ignore); ok {
		return n, true
	}
	parent := c.parentContext()
	if parent == nil {
		return nil, false
	}
	ignore.add(c.id)
	return parent.lookup(key, ignore)
}

// lookupWithoutParents never leaves the subtree rooted at c.
func (c *Context) lookupWithoutParents(key RegistrationKey, ignore ignoreSet) (hosttree.Node, bool) {
	if n, ok := c.registered[key]; ok && live(n) {
		return n, true
	}
	for _, childID := range c.childrenForKey[key].items() {
		if ignore.has(childID) {
			continue
		}
		child, ok := c.index.context(childID)
		if !ok {
			continue
		}
		if n, ok := child.lookupWithoutParents(key, ignore); ok {
			return n, true
		}
	}
	return nil, false
}

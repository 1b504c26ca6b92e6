package dicontext

import "github.com/google/uuid"

// addChildForwarding records that child may hold registrations under the
// given keys and families.
func (c *Context) addChildForwarding(child uuid.UUID, keys []RegistrationKey, families []string) {
	for _, key := range keys {
		set, ok := c.childrenForKey[key]
		if !ok {
			set = newIDSet()
			c.childrenForKey[key] = set
		}
		set.add(child)
	}
	for _, family := range families {
		set, ok := c.childrenForFamily[family]
		if !ok {
			set = newIDSet()
			c.childrenForFamily[family] = set
		}
		set.add(child)
	}
}

// removeChildForwarding drops child from every forwarding set.
func (c *Context) removeChildForwarding(child uuid.UUID) int {
	removed := 0
	for key, set := range c.childrenForKey {
		if set.remove(child) {
			removed++
		}
		if set.len() == 0 {
			delete(c.childrenForKey, key)
		}
	}
	for family, set := range c.childrenForFamily {
		if set.remove(child) {
			removed++
		}
		if set.len() == 0 {
			delete(c.childrenForFamily, family)
		}
	}
	return removed
}

// ForwardsKey reports whether child is in this context's forwarding set for key.
func (c *Context) ForwardsKey(child *Context, key RegistrationKey) bool {
	return c.childrenForKey[key].has(child.id)
}

// ForwardsFamily reports whether child is in this context's forwarding set
// for family.
func (c *Context) ForwardsFamily(child *Context, family string) bool {
	canonical, err := c.index.canonical(family)
	if err != nil {
		return false
	}
	return c.childrenForFamily[canonical].has(child.id)
}

package dicontext

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// Snapshot is a read-only view of a context for diagnostics.
type Snapshot struct {
	ID          uuid.UUID
	LoggingName string
	Attached    bool
	Anchor      string
	Parent      uuid.UUID // uuid.Nil for a root context

	Registered      []RegisteredEntry
	Multiregistered []FamilyEntry
	ForwardKeys     []ForwardKeyEntry
	ForwardFamilies []ForwardFamilyEntry
}

// RegisteredEntry is one single-value registration.
type RegisteredEntry struct {
	Key  RegistrationKey
	Node string
	Live bool
}

// FamilyEntry is one family list, in registration order.
type FamilyEntry struct {
	Family string
	Nodes  []string
}

// ForwardKeyEntry lists the child contexts searched for a key.
type ForwardKeyEntry struct {
	Key      RegistrationKey
	Children []uuid.UUID
}

// ForwardFamilyEntry lists the child contexts searched for a family.
type ForwardFamilyEntry struct {
	Family   string
	Children []uuid.UUID
}

// Snapshot captures the context's current tables, sorted for stable output.
func (c *Context) Snapshot() Snapshot {
	s := Snapshot{
		ID:          c.id,
		LoggingName: c.cfg.LoggingName,
		Attached:    c.attached,
	}
	if c.anchor != nil {
		s.Anchor = describe(c.anchor)
	}
	if p := c.parentContext(); p != nil {
		s.Parent = p.id
	}

	for key, n := range c.registered {
		s.Registered = append(s.Registered, RegisteredEntry{Key: key, Node: describe(n), Live: live(n)})
	}
	slices.SortFunc(s.Registered, func(a, b RegisteredEntry) int { return compareKeys(a.Key, b.Key) })

	for family, nodes := range c.multiregistered {
		entry := FamilyEntry{Family: family}
		for _, n := range nodes {
			entry.Nodes = append(entry.Nodes, describe(n))
		}
		s.Multiregistered = append(s.Multiregistered, entry)
	}
	slices.SortFunc(s.Multiregistered, func(a, b FamilyEntry) int { return cmp.Compare(a.Family, b.Family) })

	for key, set := range c.childrenForKey {
		s.ForwardKeys = append(s.ForwardKeys, ForwardKeyEntry{Key: key, Children: set.items()})
	}
	slices.SortFunc(s.ForwardKeys, func(a, b ForwardKeyEntry) int { return compareKeys(a.Key, b.Key) })

	for family, set := range c.childrenForFamily {
		s.ForwardFamilies = append(s.ForwardFamilies, ForwardFamilyEntry{Family: family, Children: set.items()})
	}
	slices.SortFunc(s.ForwardFamilies, func(a, b ForwardFamilyEntry) int { return cmp.Compare(a.Family, b.Family) })

	return s
}

func compareKeys(a, b RegistrationKey) int {
	if c := cmp.Compare(a.TypeName, b.TypeName); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

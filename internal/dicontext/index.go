package dicontext

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/vk/nestdi/internal/hosttree"
	"github.com/vk/nestdi/internal/registry"
)

// anchorEntry is what the index stores per anchor node.
type anchorEntry struct {
	anchor  hosttree.Node
	context *Context
}

// Index is the tree-membership index: it maps each anchor node to the context
// mounted under it, and context identities to live contexts. There is exactly
// one entry per attached context; entries are added when a context enters the
// tree and removed, by identity, when it exits.
//
// An Index is session-scoped. Every context created against it shares its
// logger and its family table. The mutex covers the index's own maps only,
// not the contexts it returns.
type Index struct {
	mu       sync.RWMutex
	anchors  map[uuid.UUID]anchorEntry // anchor node ID -> entry
	contexts map[uuid.UUID]*Context    // context ID -> live context
	anchorOf map[uuid.UUID]uuid.UUID   // context ID -> anchor node ID
	seq      map[uuid.UUID]uint64      // context ID -> attach order
	next     uint64

	logger   *slog.Logger
	families *registry.Registry
}

// NewIndex creates an empty index. families may be nil, in which case family
// names are used verbatim instead of being canonicalized.
func NewIndex(logger *slog.Logger, families *registry.Registry) *Index {
	if logger == nil {
		logger = slog.Default()
	}
	return &Index{
		anchors:  make(map[uuid.UUID]anchorEntry),
		contexts: make(map[uuid.UUID]*Context),
		anchorOf: make(map[uuid.UUID]uuid.UUID),
		seq:      make(map[uuid.UUID]uint64),
		logger:   logger,
		families: families,
	}
}

// Families returns the family table the index canonicalizes against.
func (idx *Index) Families() *registry.Registry {
	return idx.families
}

// ContextOf returns the context anchored exactly at n. It never walks.
func (idx *Index) ContextOf(n hosttree.Node) (*Context, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	entry, ok := idx.anchors[n.ID()]
	if !ok {
		return nil, false
	}
	return entry.context, true
}

// Nearest returns the first context found walking upward from n. With
// excludeSelf, a context anchored at n itself is skipped and the walk starts
// at n's parent.
func (idx *Index) Nearest(n hosttree.Node, excludeSelf bool) (*Context, bool) {
	if !excludeSelf {
		if c, ok := idx.ContextOf(n); ok {
			return c, true
		}
	}
	parent, ok := n.Parent()
	if !ok {
		return nil, false
	}
	return idx.Nearest(parent, false)
}

// Len returns the number of attached contexts.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.contexts)
}

// Contexts returns the attached contexts in attach order.
func (idx *Index) Contexts() []*Context {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]*Context, 0, len(idx.contexts))
	for _, c := range idx.contexts {
		out = append(out, c)
	}
	idx.sortByAttach(out)
	return out
}

// sortByAttach orders contexts by attach sequence. Callers hold mu.
func (idx *Index) sortByAttach(cs []*Context) {
	slices.SortFunc(cs, func(a, b *Context) int {
		return cmp.Compare(idx.seq[a.id], idx.seq[b.id])
	})
}

// context resolves a context identity to a live context.
func (idx *Index) context(id uuid.UUID) (*Context, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	c, ok := idx.contexts[id]
	return c, ok
}

// insert records c as the context owned by anchor.
func (idx *Index) insert(anchor hosttree.Node, c *Context) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if existing, ok := idx.anchors[anchor.ID()]; ok && existing.context != c {
		return &DuplicateContextError{Anchor: describe(anchor)}
	}
	idx.anchors[anchor.ID()] = anchorEntry{anchor: anchor, context: c}
	idx.contexts[c.id] = c
	idx.anchorOf[c.id] = anchor.ID()
	idx.next++
	idx.seq[c.id] = idx.next
	return nil
}

// remove deletes c's entry. The lookup goes through c's identity, not through
// an anchor, since the anchor may since have been re-parented.
func (idx *Index) remove(c *Context) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if anchorID, ok := idx.anchorOf[c.id]; ok {
		if entry, ok := idx.anchors[anchorID]; ok && entry.context == c {
			delete(idx.anchors, anchorID)
		}
	}
	delete(idx.anchorOf, c.id)
	delete(idx.contexts, c.id)
	delete(idx.seq, c.id)
}

// childrenOf returns the attached contexts whose parent is c, in attach
// order.
func (idx *Index) childrenOf(c *Context) []*Context {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	var out []*Context
	for _, other := range idx.contexts {
		if other != c && other.parentID == c.id {
			out = append(out, other)
		}
	}
	idx.sortByAttach(out)
	return out
}

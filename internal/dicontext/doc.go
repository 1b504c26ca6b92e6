// Package dicontext implements a hierarchical dependency-injection registry
// overlaid on a live host tree.
//
// # Model
//
// A Context is mounted on a host node; the host parent of that node is the
// context's anchor. The Index maps anchors to contexts, so "which context
// does this node own" is a map lookup rather than a tree walk. Contexts form
// a parallel tree: each attached context remembers the nearest context above
// its anchor as its parent.
//
// Producers register into the nearest context:
//   - Register / RegisterWithType store one node per (type name, id) key,
//     last write wins.
//   - Multiregister appends a node to an ordered family list.
//
// Consumers resolve from any context:
//   - TryLookup / Lookup / MustLookup search the context, then the child
//     contexts that forward the key, then delegate to the parent. The first
//     match wins, so closer registrations shadow farther ones.
//   - CollectAll gathers the family lists of the context, its forwarding
//     children and every ancestor, nearest first.
//
// # Forwarding
//
// A context may declare keys and families it re-registers in its parent.
// When it attaches, its identity is added to the parent's forwarding sets;
// the parent copies nothing and simply searches that child when asked.
// Registrations made into the child later are visible through the parent
// without another push. When the child detaches, its identity is removed
// from the parent's forwarding sets again.
//
// When a lookup climbs from a child to its parent it carries the child in an
// ignore-set, so the parent never descends back into the context that just
// delegated to it.
//
// # Threading
//
// Contexts are confined to the goroutine driving the host tree, and so are
// their tables: Snapshot and every lookup must run there too. The Index
// guards only its own maps, so Len and ContextOf are safe from other
// goroutines, but the contexts they hand out are not.
package dicontext

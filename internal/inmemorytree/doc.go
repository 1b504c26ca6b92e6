// Package inmemorytree provides a simple, in-memory implementation of the
// hosttree contract: named nodes with a class, parent/child links, attached
// lifecycle hooks and pre-order enter / post-order exit notification.
//
// It is designed for tools and tests that need a live tree to overlay the DI
// registry on. It is not safe for concurrent mutation; callers confine a Tree
// to one goroutine.
package inmemorytree

package nodeid

// Separator joins path segments in the canonical string form.
const Separator = "."

// Path is the structured form of a node address: the names of every node
// from the tree root down to the addressed node, root first.
type Path struct {
	Segments []string
}

// Root returns a path addressing a tree root with the given name.
func Root(name string) Path {
	return Path{Segments: []string{name}}
}

// Child returns a new path one level below p.
func (p Path) Child(name string) Path {
	segs := make([]string, len(p.Segments), len(p.Segments)+1)
	copy(segs, p.Segments)
	return Path{Segments: append(segs, name)}
}

// Parent returns the path one level above p, and false when p is a root
// path (or empty).
func (p Path) Parent() (Path, bool) {
	if len(p.Segments) <= 1 {
		return Path{}, false
	}
	return Path{Segments: p.Segments[:len(p.Segments)-1]}, true
}

// Name returns the last segment, i.e. the addressed node's own name.
func (p Path) Name() string {
	if len(p.Segments) == 0 {
		return ""
	}
	return p.Segments[len(p.Segments)-1]
}

// Depth returns the number of segments.
func (p Path) Depth() int {
	return len(p.Segments)
}

// IsZero reports whether p has no segments.
func (p Path) IsZero() bool {
	return len(p.Segments) == 0
}

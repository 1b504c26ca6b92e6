package nodeid

import (
	"slices"
	"strings"
)

// String serializes the Path into its canonical dot-separated form.
func (p Path) String() string {
	return strings.Join(p.Segments, Separator)
}

// Equal checks two paths segment by segment.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.Segments, other.Segments)
}

// HasPrefix reports whether p is prefix or lies below it.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.Segments) > len(p.Segments) {
		return false
	}
	return slices.Equal(p.Segments[:len(prefix.Segments)], prefix.Segments)
}

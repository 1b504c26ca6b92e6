package dicontext

import (
	"strings"

	"github.com/vk/nestdi/internal/hosttree"
)

// NamedForRegistration is an optional node capability. A node implementing it
// registers under the reported name instead of its class, unless it reports
// false.
type NamedForRegistration interface {
	RegistrationName() (string, bool)
}

// TypeNameOf returns the registration type name of n: its custom name when it
// has one, its class otherwise.
func TypeNameOf(n hosttree.Node) string {
	if named, ok := n.(NamedForRegistration); ok {
		if name, ok := named.RegistrationName(); ok {
			return name
		}
	}
	return n.Class()
}

// describe renders a node for logs and errors.
func describe(n hosttree.Node) string {
	if n == nil {
		return "<nil>"
	}
	names := []string{n.Name()}
	for _, a := range hosttree.Ancestors(n) {
		names = append(names, a.Name())
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, ".")
}

// live reports whether a stored node reference may still be handed out.
func live(n hosttree.Node) bool {
	return n != nil && n.InsideTree()
}

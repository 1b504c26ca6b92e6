package dicontext

import "fmt"

// RequiredLookupError is returned by Lookup when no context reachable from
// the queried one holds the key.
type RequiredLookupError struct {
	TypeName string
	ID       string
}

func (e *RequiredLookupError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("failed to find node with type %s", e.TypeName)
	}
	return fmt.Sprintf("failed to find node with type %s and id %s", e.TypeName, e.ID)
}

// MissingContextError is returned by the registration entry points when no
// context exists anywhere above the producer.
type MissingContextError struct {
	Node  string
	Class string
}

func (e *MissingContextError) Error() string {
	return fmt.Sprintf("no DI context in the parentage of node %s (%s)", e.Node, e.Class)
}

// DuplicateContextError is reported when a second context attaches under an
// anchor that already carries one.
type DuplicateContextError struct {
	Anchor string
}

func (e *DuplicateContextError) Error() string {
	return fmt.Sprintf("node %s already owns a DI context", e.Anchor)
}

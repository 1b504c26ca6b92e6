package config

import "github.com/zclconf/go-cty/cty"

// Scene is the unified representation of one scene.
type Scene struct {
	Families []*FamilyDef
	Root     *NodeSpec
	Queries  []*QuerySpec
	// Detach lists node paths removed from the tree between the first and
	// the second query pass.
	Detach []string
}

// FamilyDef declares a capability family and its alternative spellings.
type FamilyDef struct {
	Name        string
	Aliases     []string
	Description string
}

// NodeSpec describes one host node and everything mounted under it.
type NodeSpec struct {
	Name             string
	Class            string
	RegistrationName string
	Props            map[string]cty.Value

	Context            *ContextSpec
	Registrations      []*RegisterSpec
	Multiregistrations []*MultiregisterSpec
	Children           []*NodeSpec
}

// ContextSpec mounts a DI context on the node it belongs to.
type ContextSpec struct {
	LoggingName     string
	ReRegister      []KeySpec
	ReMultiregister []string
}

// KeySpec is a (type, id) registration key. An empty ID is the default
// instance.
type KeySpec struct {
	Type string
	ID   string
}

// RegisterSpec places a registration helper node under its owner. An empty
// Type uses the owner's registration name or class.
type RegisterSpec struct {
	Name           string
	Type           string
	ID             string
	IntoOwnContext bool
}

// MultiregisterSpec places a multi-registration helper node under its owner.
// An empty Family uses the owner's class.
type MultiregisterSpec struct {
	Name           string
	Family         string
	IntoOwnContext bool
}

// QueryKind selects what a query evaluates.
type QueryKind string

const (
	QueryLookup    QueryKind = "lookup"
	QueryTryLookup QueryKind = "try_lookup"
	QueryCollect   QueryKind = "collect"
	QueryNearest   QueryKind = "nearest"
)

// QueryKinds lists every supported kind in display order.
var QueryKinds = []QueryKind{QueryLookup, QueryTryLookup, QueryCollect, QueryNearest}

// QuerySpec is a question asked of the live tree.
type QuerySpec struct {
	Name string
	Kind QueryKind
	// From is the dot-separated path of the node the query starts at. For
	// lookups and collections the nearest context at or above it answers.
	From string
	// Target is the type name for lookups and the family for collections.
	// It is unused by nearest queries.
	Target string
	ID     string
	// AfterDetach defers the query to the second pass.
	AfterDetach bool
}

// Walk visits n and its descendants pre-order, passing each node's path.
func (n *NodeSpec) Walk(fn func(path []string, spec *NodeSpec)) {
	var visit func(prefix []string, spec *NodeSpec)
	visit = func(prefix []string, spec *NodeSpec) {
		path := append(append([]string(nil), prefix...), spec.Name)
		fn(path, spec)
		for _, c := range spec.Children {
			visit(path, c)
		}
	}
	visit(nil, n)
}

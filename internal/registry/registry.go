package registry

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Module is the interface that compiled-in packages implement to declare the
// capability families they own.
type Module interface {
	Register(r *Registry)
}

// Family is a declared capability family.
type Family struct {
	Name        string
	Aliases     []string
	Description string
}

// Registry is the canonical-name table. Declarations happen before Freeze;
// lookups may happen at any time and are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	families  map[string]*Family
	spellings map[string]string // folded spelling -> canonical name
	frozen    bool
}

// New creates an empty, unfrozen registry.
func New() *Registry {
	return &Registry{
		families:  make(map[string]*Family),
		spellings: make(map[string]string),
	}
}

// fold normalizes a spelling for comparison.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// DeclareFamily registers a family and its aliases. Declaring an empty name,
// a spelling that is already taken, or declaring after Freeze is a
// programmer error and panics.
func (r *Registry) DeclareFamily(f Family) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		panic(fmt.Sprintf("family '%s' declared after the registry was frozen", f.Name))
	}
	if strings.TrimSpace(f.Name) == "" {
		panic("family name cannot be empty")
	}
	for _, spelling := range append([]string{f.Name}, f.Aliases...) {
		key := fold(spelling)
		if owner, exists := r.spellings[key]; exists {
			panic(fmt.Sprintf("family spelling '%s' already registered by '%s'", spelling, owner))
		}
		r.spellings[key] = f.Name
	}
	slog.Debug("Declaring capability family.", "family", f.Name, "aliases", f.Aliases)
	fam := f
	r.families[f.Name] = &fam
}

// Declare is shorthand for DeclareFamily with no description.
func (r *Registry) Declare(name string, aliases ...string) {
	r.DeclareFamily(Family{Name: name, Aliases: aliases})
}

// Load lets each module declare its families.
func (r *Registry) Load(modules ...Module) {
	for _, m := range modules {
		m.Register(r)
	}
}

// Freeze closes the table to further declarations. It is idempotent.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Canonical resolves any declared spelling of a family to its canonical name.
func (r *Registry) Canonical(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if canonical, ok := r.spellings[fold(name)]; ok {
		return canonical, nil
	}
	return "", &UnknownFamilyError{Name: name}
}

// MustCanonical is Canonical for names that are known to be declared.
func (r *Registry) MustCanonical(name string) string {
	canonical, err := r.Canonical(name)
	if err != nil {
		panic(err)
	}
	return canonical
}

// Family returns the declaration for a canonical name.
func (r *Registry) Family(name string) (Family, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.families[name]
	if !ok {
		return Family{}, false
	}
	return *f, true
}

// Families returns all canonical names, sorted.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

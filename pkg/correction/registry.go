package correction

import (
	"cmp"
	"slices"
	"sync"
)

// Factory creates a fresh Provider for each computation.
type Factory struct {
	// ID is the unique producer identifier (e.g. "remove-unused-import").
	ID string

	// Assist marks producers offered for a selection rather than a diagnostic.
	Assist bool

	// Codes lists the diagnostic codes a fix applies to.
	Codes []string

	New func() Provider
}

// Registry holds the registered producer factories.
type Registry struct {
	mu   sync.RWMutex
	byID map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Factory)}
}

// Register adds a factory. A factory with the same ID is replaced.
func (r *Registry) Register(f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[f.ID] = f
}

// Get retrieves a factory by ID.
func (r *Registry) Get(id string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byID[id]
	return f, ok
}

// IDs returns all registered IDs, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// FixFactories returns the fix factories registered for code, sorted by ID.
func (r *Registry) FixFactories(code string) []Factory {
	return r.collect(func(f Factory) bool {
		return !f.Assist && slices.Contains(f.Codes, code)
	})
}

// AssistFactories returns the assist factories, sorted by ID.
func (r *Registry) AssistFactories() []Factory {
	return r.collect(func(f Factory) bool {
		return f.Assist
	})
}

func (r *Registry) collect(keep func(Factory) bool) []Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Factory
	for _, f := range r.byID {
		if keep(f) {
			out = append(out, f)
		}
	}

	// Sort by ID for consistent, deterministic output.
	slices.SortFunc(out, func(a, b Factory) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// DefaultRegistry is the global registry filled by the producers package.
//
//nolint:gochecknoglobals // Global registry is the intended extension point.
var DefaultRegistry = NewRegistry()

package content

import (
	"fmt"
	"sort"
	"sync"
)

// Activator produces a fresh, zero-valued part instance.
type Activator func() Part

// Registry maps part type names to activators so definition-driven flows can
// materialise parts they only know by name. Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	activators map[string]Activator
}

// NewRegistry creates an empty part registry.
func NewRegistry() *Registry {
	return &Registry{
		activators: make(map[string]Activator),
	}
}

// Register adds an activator under the part type name it produces. Duplicate
// registrations return an error.
func (r *Registry) Register(activator Activator) error {
	if activator == nil {
		return fmt.Errorf("content: activator is required")
	}
	probe := activator()
	if probe == nil {
		return fmt.Errorf("content: activator produced a nil part")
	}
	name := probe.PartType()
	if name == "" {
		return fmt.Errorf("content: part type name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.activators[name]; exists {
		return fmt.Errorf("content: part type %q already registered", name)
	}
	r.activators[name] = activator
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(activator Activator) {
	if err := r.Register(activator); err != nil {
		panic(err)
	}
}

// Activate produces a fresh part of the named type.
func (r *Registry) Activate(partType string) (Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activator, ok := r.activators[partType]
	if !ok {
		return nil, fmt.Errorf("content: part type %q not registered", partType)
	}
	return activator(), nil
}

// Has reports whether a part type is registered.
func (r *Registry) Has(partType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.activators[partType]
	return ok
}

// List returns the registered part type names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.activators))
	for name := range r.activators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

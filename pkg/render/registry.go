package render

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-displaykit/pkg/shapes"
)

// Registry indexes renderers by name so hosts can pick an output format per
// request. Lookup by media type supports content negotiation.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates a registry seeded with the given renderers. Seeding a
// duplicate or unnamed renderer panics, matching MustRegister.
func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{
		renderers: make(map[string]Renderer),
	}
	for _, renderer := range renderers {
		r.MustRegister(renderer)
	}
	return r
}

// Register adds a renderer under its Name(). Duplicate names return an error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}

	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found (have %s)", name, strings.Join(r.names(), ", "))
	}
	return renderer, nil
}

// ForContentType retrieves the renderer whose ContentType matches the given
// media type, ignoring parameters such as charset. Names are tried in sorted
// order so the result is deterministic when several renderers share a type.
func (r *Registry) ForContentType(mediaType string) (Renderer, error) {
	want := strings.ToLower(strings.TrimSpace(mediaType))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.names() {
		renderer := r.renderers[name]
		base, _, _ := strings.Cut(renderer.ContentType(), ";")
		if strings.ToLower(strings.TrimSpace(base)) == want {
			return renderer, nil
		}
	}
	return nil, fmt.Errorf("render: no renderer for content type %q", mediaType)
}

// Render dispatches the shape to the named renderer.
func (r *Registry) Render(ctx context.Context, name string, shape shapes.Shape, options Options) ([]byte, error) {
	renderer, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, shape, options)
}

// List returns the registered renderer names sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

// Has reports whether a renderer is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[name]
	return ok
}

// names assumes the caller holds at least the read lock.
func (r *Registry) names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

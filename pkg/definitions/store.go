// Package definitions holds the content type metadata store and the loaders
// that populate it from YAML manifests or OpenAPI documents.
package definitions

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-displaykit/pkg/content"
)

// Store is the in-memory definition source handed to display managers.
// Writes happen at composition time; per-request access is read-only, so the
// read path takes only a shared lock.
type Store struct {
	mu    sync.RWMutex
	types map[string]*content.TypeDefinition
}

// NewStore constructs a store seeded with the provided definitions,
// panicking on duplicates the way registry wiring does at init time.
func NewStore(defs ...*content.TypeDefinition) *Store {
	s := &Store{
		types: make(map[string]*content.TypeDefinition, len(defs)),
	}
	for _, def := range defs {
		if err := s.Add(def); err != nil {
			panic(err)
		}
	}
	return s
}

// Add registers a content type definition. Duplicate names return an error.
func (s *Store) Add(def *content.TypeDefinition) error {
	if def == nil {
		return fmt.Errorf("definitions: definition is required")
	}
	if def.Name == "" {
		return fmt.Errorf("definitions: content type name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.types == nil {
		s.types = make(map[string]*content.TypeDefinition)
	}
	if _, exists := s.types[def.Name]; exists {
		return fmt.Errorf("definitions: content type %q already defined", def.Name)
	}
	s.types[def.Name] = def
	return nil
}

// Type resolves a content type definition by name. It satisfies the display
// package's DefinitionSource seam.
func (s *Store) Type(name string) (*content.TypeDefinition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.types[name]
	return def, ok
}

// Types returns every definition sorted by name.
func (s *Store) Types() []*content.TypeDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*content.TypeDefinition, 0, len(s.types))
	for _, def := range s.types {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

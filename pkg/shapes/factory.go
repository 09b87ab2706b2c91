package shapes

import (
	"errors"
	"fmt"
	"sync"
)

// Arguments carries the two source forms CreateFrom accepts: one positional
// model whose exported fields are copied wholesale, or individual named
// entries. When both are present the positional model wins and the named
// entries are ignored; callers relying on merging must issue two calls.
type Arguments struct {
	Model any
	Named map[string]any
}

// FactoryOption customises factory construction.
type FactoryOption func(*Factory)

// WithOnCreating registers creating handlers at construction time.
func WithOnCreating(handlers ...CreatingHandler) FactoryOption {
	return func(f *Factory) {
		f.creating = append(f.creating, handlers...)
	}
}

// WithOnCreated registers created handlers at construction time.
func WithOnCreated(handlers ...CreatedHandler) FactoryOption {
	return func(f *Factory) {
		f.created = append(f.created, handlers...)
	}
}

// Factory constructs shape instances by semantic type name and publishes
// creating/created lifecycle notifications around each construction. The
// factory holds no per-request state and is safe for concurrent use.
type Factory struct {
	mu       sync.RWMutex
	creating []CreatingHandler
	created  []CreatedHandler
}

// NewFactory constructs a Factory applying any provided options.
func NewFactory(options ...FactoryOption) *Factory {
	f := &Factory{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// OnCreating registers a handler invoked before each base factory runs.
func (f *Factory) OnCreating(handler CreatingHandler) {
	if handler == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creating = append(f.creating, handler)
}

// OnCreated registers a handler invoked after each instance is produced.
func (f *Factory) OnCreated(handler CreatedHandler) {
	if handler == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, handler)
}

// CreateOption customises a single Create call.
type CreateOption func(*createConfig)

type createConfig struct {
	base       func() Shape
	onCreating []CreatingHandler
	onCreated  []CreatedHandler
}

// WithBase supplies the base factory producing the raw instance. The default
// produces an empty Composite.
func WithBase(base func() Shape) CreateOption {
	return func(cfg *createConfig) {
		cfg.base = base
	}
}

// OnCreatingOnce attaches a creating handler for this call only.
func OnCreatingOnce(handler CreatingHandler) CreateOption {
	return func(cfg *createConfig) {
		if handler != nil {
			cfg.onCreating = append(cfg.onCreating, handler)
		}
	}
}

// OnCreatedOnce attaches a created handler for this call only.
func OnCreatedOnce(handler CreatedHandler) CreateOption {
	return func(cfg *createConfig) {
		if handler != nil {
			cfg.onCreated = append(cfg.onCreated, handler)
		}
	}
}

// Create is the core primitive: it resolves the base factory, fires creating
// handlers (which may swap the base), produces the instance, stamps the shape
// type onto its metadata, and fires created handlers before returning it.
func (f *Factory) Create(shapeType string, options ...CreateOption) (Shape, error) {
	if shapeType == "" {
		return nil, errors.New("shapes: shape type is required")
	}

	cfg := &createConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.base == nil {
		cfg.base = func() Shape { return NewComposite(shapeType) }
	}

	creating := CreatingContext{
		ShapeType: shapeType,
		New:       cfg.base,
	}
	for _, handler := range f.creatingHandlers() {
		handler(&creating)
	}
	for _, handler := range cfg.onCreating {
		handler(&creating)
	}

	shape := creating.New()
	if shape == nil {
		return nil, fmt.Errorf("shapes: base factory for %q returned nil", shapeType)
	}
	meta := shape.ShapeMetadata()
	if meta.Type == "" {
		meta.Type = shapeType
	}

	created := CreatedContext{
		ShapeType: shapeType,
		Shape:     shape,
	}
	for _, handler := range f.createdHandlers() {
		handler(&created)
	}
	for _, handler := range cfg.onCreated {
		handler(&created)
	}

	return shape, nil
}

// CreateFrom builds a shape and seeds its property bag from args. A positional
// model has every exported field copied by name; otherwise each named entry is
// copied verbatim. A nil model with no named entries yields an empty shape.
func (f *Factory) CreateFrom(shapeType string, args Arguments) (Shape, error) {
	shape, err := f.Create(shapeType)
	if err != nil {
		return nil, err
	}

	if args.Model != nil {
		CopyProperties(shape, args.Model)
		return shape, nil
	}
	for name, value := range args.Named {
		shape.Set(name, value)
	}
	return shape, nil
}

func (f *Factory) creatingHandlers() []CreatingHandler {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]CreatingHandler(nil), f.creating...)
}

func (f *Factory) createdHandlers() []CreatedHandler {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]CreatedHandler(nil), f.created...)
}

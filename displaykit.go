package displaykit

import (
	"context"
	"net/url"

	"github.com/goliatone/go-displaykit/pkg/content"
	"github.com/goliatone/go-displaykit/pkg/definitions"
	"github.com/goliatone/go-displaykit/pkg/display"
	"github.com/goliatone/go-displaykit/pkg/render"
	"github.com/goliatone/go-displaykit/pkg/shapes"
)

// Shape is the unit of presentation composed by drivers and consumed by
// renderers; alias exported via the root package for convenience.
type Shape = shapes.Shape

// ShapeFactory creates shapes and publishes their lifecycle events.
type ShapeFactory = shapes.Factory

// Arguments seeds shape properties from a model or named values.
type Arguments = shapes.Arguments

// Item is a content item carrying welded parts.
type Item = content.Item

// Part is the contract content parts implement.
type Part = content.Part

// TypeDefinition describes a content type and the parts it attaches.
type TypeDefinition = content.TypeDefinition

// Manager walks an item's parts and composes their shapes.
type Manager = display.Manager

// PartDriver builds display and editor shapes for one part type.
type PartDriver = display.PartDriver

// Updater binds submitted values onto part models during editor updates.
type Updater = display.Updater

// RenderOptions describes per-request overrides renderers can use to theme
// output, prefill values, or surface validation errors.
type RenderOptions = render.Options

// Renderer converts a shape tree into bytes.
type Renderer = render.Renderer

// NewShapeFactory exposes the shape factory constructor from the top-level
// module.
func NewShapeFactory(options ...shapes.FactoryOption) *shapes.Factory {
	return shapes.NewFactory(options...)
}

// NewManager constructs a display manager; see display.NewManager.
func NewManager(options ...display.Option) *display.Manager {
	return display.NewManager(options...)
}

// NewDefinitionStore seeds an in-memory definition store.
func NewDefinitionStore(defs ...*content.TypeDefinition) *definitions.Store {
	return definitions.NewStore(defs...)
}

// NewRendererRegistry creates a renderer registry seeded with the given
// renderers; callers pick a format per request with Get or ForContentType.
func NewRendererRegistry(renderers ...render.Renderer) *render.Registry {
	return render.NewRegistry(renderers...)
}

// WithDrivers forwards driver registration to the manager constructor.
func WithDrivers(drivers ...display.PartDriver) display.Option {
	return display.WithDrivers(drivers...)
}

// WithDefinitions forwards the definition source to the manager constructor.
func WithDefinitions(source display.DefinitionSource) display.Option {
	return display.WithDefinitions(source)
}

// WithFactory forwards a shared shape factory to the manager constructor.
func WithFactory(factory *shapes.Factory) display.Option {
	return display.WithFactory(factory)
}

// RenderDisplay builds the display tree for an item and renders it. It is the
// simplest entry point for callers that just want output bytes.
func RenderDisplay(ctx context.Context, manager *display.Manager, renderer render.Renderer, item *content.Item, displayType string, options render.Options) ([]byte, error) {
	shape, err := manager.BuildDisplay(ctx, item, displayType)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, shape, options)
}

// RenderEditor builds the editor tree for an item and renders it.
func RenderEditor(ctx context.Context, manager *display.Manager, renderer render.Renderer, item *content.Item, htmlFieldPrefix string, options render.Options) ([]byte, error) {
	shape, err := manager.BuildEditor(ctx, item, htmlFieldPrefix)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, shape, options)
}

// UpdateEditor binds form values onto the item's parts and renders the
// redisplay editor tree. Binding problems are returned per field path, not as
// an error.
func UpdateEditor(ctx context.Context, manager *display.Manager, renderer render.Renderer, item *content.Item, values url.Values, htmlFieldPrefix string, options render.Options) ([]byte, map[string][]string, error) {
	updater := display.NewFormUpdater(values)
	shape, err := manager.UpdateEditor(ctx, item, updater, htmlFieldPrefix)
	if err != nil {
		return nil, nil, err
	}
	if options.Errors == nil && updater.HasErrors() {
		options.Errors = updater.Errors()
	}
	out, err := renderer.Render(ctx, shape, options)
	if err != nil {
		return nil, nil, err
	}
	return out, updater.Errors(), nil
}

package render

import (
	"context"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-displaykit/pkg/render/template"
	"github.com/goliatone/go-displaykit/pkg/shapes"
)

// HTMLRenderer renders shape trees through a template engine, resolving the
// template per shape from its alternates.
type HTMLRenderer struct {
	engine   template.TemplateRenderer
	resolver *Resolver
}

var _ Renderer = (*HTMLRenderer)(nil)

// NewHTMLRenderer wires a template engine and a resolver together.
func NewHTMLRenderer(engine template.TemplateRenderer, resolver *Resolver) (*HTMLRenderer, error) {
	if engine == nil {
		return nil, fmt.Errorf("render: template engine is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("render: resolver is required")
	}
	return &HTMLRenderer{engine: engine, resolver: resolver}, nil
}

// Name identifies the renderer inside a registry.
func (r *HTMLRenderer) Name() string { return "html" }

// ContentType reports the media type of rendered output.
func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

// Render resolves the shape's template and executes it with the shape's
// properties as template context.
func (r *HTMLRenderer) Render(ctx context.Context, shape shapes.Shape, options Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if shape == nil {
		return nil, fmt.Errorf("render: shape is required")
	}

	resolution, err := r.resolver.Resolve(shape.ShapeMetadata())
	if err != nil {
		return nil, err
	}

	cfg := options.Theme
	if cfg == nil {
		cfg = resolution.Theme
	}

	out, err := r.engine.RenderTemplate(resolution.Template, templateData(shape, cfg, options))
	if err != nil {
		return nil, fmt.Errorf("render: execute %q: %w", resolution.Template, err)
	}

	// Wrapper templates apply in declaration order, so the last named wrapper
	// ends up outermost. Each one receives the accumulated markup as Content.
	for _, wrapper := range shape.ShapeMetadata().Wrappers {
		wrapped, err := r.resolver.ResolveName(wrapper)
		if err != nil {
			return nil, err
		}
		data := templateData(shape, cfg, options)
		data["Content"] = out
		out, err = r.engine.RenderTemplate(wrapped.Template, data)
		if err != nil {
			return nil, fmt.Errorf("render: execute wrapper %q: %w", wrapped.Template, err)
		}
	}
	return []byte(out), nil
}

// templateData lays out the template context: shape properties at the top
// level, with reserved keys for chrome the templates always need.
func templateData(shape shapes.Shape, cfg *theme.RendererConfig, options Options) map[string]any {
	data := make(map[string]any)
	for name, value := range shape.Properties() {
		data[name] = value
	}

	meta := shape.ShapeMetadata()
	data["Metadata"] = map[string]any{
		"Name":        meta.Name,
		"Type":        meta.Type,
		"DisplayType": meta.DisplayType,
		"Position":    meta.Position,
		"Alternates":  meta.Alternates.Values(),
	}
	data["Id"] = shape.ID()
	data["Classes"] = shape.Classes()
	data["Attributes"] = shape.Attributes()

	if cfg != nil {
		data["Theme"] = map[string]any{
			"Name":    cfg.Theme,
			"Variant": cfg.Variant,
			"Tokens":  cfg.Tokens,
			"CSSVars": cfg.CSSVars,
		}
	}
	if len(options.Values) > 0 {
		data["Values"] = options.Values
	}
	if len(options.Errors) > 0 {
		data["Errors"] = options.Errors
	}
	return data
}

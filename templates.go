package displaykit

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-displaykit/pkg/render"
	"github.com/goliatone/go-displaykit/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// DefaultTemplatesFS exposes the built-in template bundle so callers can
// reuse or extend it without shipping their own template directory.
func DefaultTemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// NewDefaultRenderer builds an HTML renderer backed by the embedded
// templates. Extra resolver options can layer theme selection or alternate
// probes on top of the bundle.
func NewDefaultRenderer(options ...render.ResolverOption) (render.Renderer, error) {
	fsys := DefaultTemplatesFS()
	engine, err := gotemplate.New(gotemplate.WithFS(fsys))
	if err != nil {
		return nil, err
	}
	opts := append([]render.ResolverOption{render.WithFSProbe(fsys, ".tpl")}, options...)
	return render.NewHTMLRenderer(engine, render.NewResolver(opts...))
}

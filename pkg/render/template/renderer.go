// Package template defines the engine seam display renderers depend on,
// mirroring the github.com/goliatone/go-template contract so any compatible
// engine can be plugged in.
package template

import (
	"io"
)

// TemplateRenderer is the engine contract. Render picks between a named
// template and inline content, RenderTemplate always loads by name, and
// RenderString always parses inline content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

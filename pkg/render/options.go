package render

import (
	theme "github.com/goliatone/go-theme"
)

// Options describe per-request data that renderers can use to customise
// their output without mutating the shape tree.
type Options struct {
	// Theme carries the resolved theme configuration (partial overrides,
	// design tokens, asset resolver). Nil means render with the renderer's
	// built-in templates.
	Theme *theme.RendererConfig
	// Values pre-populates editor controls using dotted field paths (e.g.
	// "BodyPart.Body"). Display renderers normally ignore these.
	Values map[string]any
	// Errors surfaces server-side validation feedback keyed by field path so
	// editor templates can attach inline messages.
	Errors map[string][]string
}

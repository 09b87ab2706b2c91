package render

import (
	"context"

	"github.com/goliatone/go-displaykit/pkg/shapes"
)

// Renderer converts a composed shape tree into a byte representation
// (HTML, JSON, plain text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, shape shapes.Shape, options Options) ([]byte, error)
}

// Package parts ships the built-in content parts and their display drivers.
// They double as the reference wiring for the driver contract: a display hook
// producing a read shape, an editor hook producing a form shape, and an
// update hook binding submitted values back onto the part.
package parts

import (
	"context"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-displaykit/pkg/content"
	"github.com/goliatone/go-displaykit/pkg/display"
	"github.com/goliatone/go-displaykit/pkg/shapes"
)

// BodyPart holds the main HTML body of a content item.
type BodyPart struct {
	Body string
}

// PartType implements content.Part.
func (*BodyPart) PartType() string { return "BodyPart" }

var (
	bodyPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy
)

// bodySanitizer strips markup outside the user-generated-content allowlist.
// Sanitation happens at display time so the stored body keeps whatever the
// author submitted.
func bodySanitizer() *bluemonday.Policy {
	bodyPolicyOnce.Do(func() {
		bodyPolicy = bluemonday.UGCPolicy()
	})
	return bodyPolicy
}

// SanitizeBody returns the display-safe form of raw body HTML.
func SanitizeBody(raw string) string {
	return bodySanitizer().Sanitize(raw)
}

// NewBodyDriver builds the BodyPart display driver.
func NewBodyDriver() *display.Driver[*BodyPart] {
	return &display.Driver[*BodyPart]{
		DisplayWith: func(part *BodyPart, bctx *display.BuildPartContext) (shapes.Shape, error) {
			return bctx.Factory.CreateFrom("BodyPart", shapes.Arguments{
				Named: map[string]any{
					"Html": SanitizeBody(part.Body),
				},
			})
		},
		EditorWith: func(part *BodyPart, bctx *display.BuildPartContext) (shapes.Shape, error) {
			return editorShape(bctx, "BodyPart_Edit", map[string]any{
				"Body": part.Body,
			})
		},
		UpdateContext: func(ctx context.Context, part *BodyPart, uctx *display.UpdatePartContext) (shapes.Shape, error) {
			if err := uctx.Updater.TryUpdateModel(ctx, part, uctx.HTMLFieldPrefix); err != nil {
				return nil, err
			}
			return editorShape(&uctx.BuildPartContext, "BodyPart_Edit", map[string]any{
				"Body": part.Body,
			})
		},
	}
}

// RegisterActivators registers the built-in part activators.
func RegisterActivators(registry *content.Registry) {
	registry.MustRegister(func() content.Part { return &BodyPart{} })
	registry.MustRegister(func() content.Part { return &TitlePart{} })
}

// editorShape builds an editor form shape carrying the field prefix the form
// renderer scopes input names with.
func editorShape(bctx *display.BuildPartContext, shapeType string, fields map[string]any) (shapes.Shape, error) {
	shape, err := bctx.Factory.CreateFrom(shapeType, shapes.Arguments{Named: fields})
	if err != nil {
		return nil, err
	}
	shape.Set("HtmlFieldPrefix", bctx.HTMLFieldPrefix)
	return shape, nil
}

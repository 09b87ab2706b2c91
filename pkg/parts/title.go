package parts

import (
	"context"

	"github.com/goliatone/go-displaykit/pkg/display"
	"github.com/goliatone/go-displaykit/pkg/shapes"
)

// TitlePart holds a content item's title.
type TitlePart struct {
	Title string
}

// PartType implements content.Part.
func (*TitlePart) PartType() string { return "TitlePart" }

// NewTitleDriver builds the TitlePart display driver.
func NewTitleDriver() *display.Driver[*TitlePart] {
	return &display.Driver[*TitlePart]{
		DisplayWith: func(part *TitlePart, bctx *display.BuildPartContext) (shapes.Shape, error) {
			return bctx.Factory.CreateFrom("TitlePart", shapes.Arguments{Model: part})
		},
		EditorWith: func(part *TitlePart, bctx *display.BuildPartContext) (shapes.Shape, error) {
			return editorShape(bctx, "TitlePart_Edit", map[string]any{
				"Title": part.Title,
			})
		},
		UpdateContext: func(ctx context.Context, part *TitlePart, uctx *display.UpdatePartContext) (shapes.Shape, error) {
			if err := uctx.Updater.TryUpdateModel(ctx, part, uctx.HTMLFieldPrefix); err != nil {
				return nil, err
			}
			return editorShape(&uctx.BuildPartContext, "TitlePart_Edit", map[string]any{
				"Title": part.Title,
			})
		},
	}
}

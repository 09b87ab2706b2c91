package display

import (
	"context"
	"errors"

	"github.com/goliatone/go-displaykit/pkg/content"
	"github.com/goliatone/go-displaykit/pkg/shapes"
)

// PartDriver adapts a generic content part into display and editor shapes.
// All three operations return (nil, nil) when the driver is not applicable to
// the supplied part, letting a manager probe several drivers per part without
// error-driven control flow.
type PartDriver interface {
	BuildDisplay(ctx context.Context, part content.Part, def *content.TypePartDefinition, bctx BuildPartContext) (shapes.Shape, error)
	BuildEditor(ctx context.Context, part content.Part, def *content.TypePartDefinition, bctx BuildPartContext) (shapes.Shape, error)
	UpdateEditor(ctx context.Context, part content.Part, def *content.TypePartDefinition, uctx UpdatePartContext) (shapes.Shape, error)
}

// Driver is the generic base PartDriver for parts of type T. Hooks come in
// three arities; the richest configured one wins and unset hooks fall through
// to the next-simplest, terminating in a nil shape (display, editor) or a
// plain no-op (update). A part whose runtime type is not T short-circuits to
// (nil, nil) before any hook runs.
//
// Driver carries no per-call state: the type/part definition travels inside
// the build context, so a single instance is safe for concurrent requests.
type Driver[T content.Part] struct {
	// Display hooks, richest first.
	DisplayContext func(ctx context.Context, part T, bctx *BuildPartContext) (shapes.Shape, error)
	DisplayWith    func(part T, bctx *BuildPartContext) (shapes.Shape, error)
	Display        func(part T) (shapes.Shape, error)

	// Editor hooks.
	EditorContext func(ctx context.Context, part T, bctx *BuildPartContext) (shapes.Shape, error)
	EditorWith    func(part T, bctx *BuildPartContext) (shapes.Shape, error)
	Editor        func(part T) (shapes.Shape, error)

	// Update hooks.
	UpdateContext func(ctx context.Context, part T, uctx *UpdatePartContext) (shapes.Shape, error)
	UpdateWith    func(part T, uctx *UpdatePartContext) (shapes.Shape, error)
	Update        func(part T, updater Updater) (shapes.Shape, error)
}

var _ PartDriver = (*Driver[content.Part])(nil)

// BuildDisplay runs the display hook cascade and stamps the produced shape
// with the part's alternates and instance name.
func (d *Driver[T]) BuildDisplay(ctx context.Context, part content.Part, def *content.TypePartDefinition, bctx BuildPartContext) (shapes.Shape, error) {
	typed, ok := part.(T)
	if !ok {
		return nil, nil
	}
	if def == nil {
		return nil, errors.New("display: type part definition is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	child := bctx.forPart(def)
	shape, err := d.displayHook(ctx, typed, &child)
	if err != nil || shape == nil {
		return nil, err
	}
	ApplyPartDisplay(shape, def, child.DisplayType)
	return shape, nil
}

// BuildEditor runs the editor hook cascade with the same short-circuit and
// prefix computation as BuildDisplay.
func (d *Driver[T]) BuildEditor(ctx context.Context, part content.Part, def *content.TypePartDefinition, bctx BuildPartContext) (shapes.Shape, error) {
	typed, ok := part.(T)
	if !ok {
		return nil, nil
	}
	if def == nil {
		return nil, errors.New("display: type part definition is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	child := bctx.forPart(def)
	shape, err := d.editorHook(ctx, typed, &child)
	if err != nil || shape == nil {
		return nil, err
	}
	ApplyPartDisplay(shape, def, child.DisplayType)
	return shape, nil
}

// UpdateEditor runs the update hook cascade, then always re-applies the part
// onto the owning item under its instance name, even when the hook returned no
// shape, so by-value mutations survive.
func (d *Driver[T]) UpdateEditor(ctx context.Context, part content.Part, def *content.TypePartDefinition, uctx UpdatePartContext) (shapes.Shape, error) {
	typed, ok := part.(T)
	if !ok {
		return nil, nil
	}
	if def == nil {
		return nil, errors.New("display: type part definition is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	child := uctx
	child.BuildPartContext = uctx.BuildPartContext.forPart(def)
	shape, err := d.updateHook(ctx, typed, &child)

	if child.Item != nil {
		child.Item.Apply(def.Name, typed)
	}
	if err != nil || shape == nil {
		return nil, err
	}
	ApplyPartDisplay(shape, def, child.DisplayType)
	return shape, nil
}

func (d *Driver[T]) displayHook(ctx context.Context, part T, bctx *BuildPartContext) (shapes.Shape, error) {
	switch {
	case d.DisplayContext != nil:
		return d.DisplayContext(ctx, part, bctx)
	case d.DisplayWith != nil:
		return d.DisplayWith(part, bctx)
	case d.Display != nil:
		return d.Display(part)
	default:
		return nil, nil
	}
}

func (d *Driver[T]) editorHook(ctx context.Context, part T, bctx *BuildPartContext) (shapes.Shape, error) {
	switch {
	case d.EditorContext != nil:
		return d.EditorContext(ctx, part, bctx)
	case d.EditorWith != nil:
		return d.EditorWith(part, bctx)
	case d.Editor != nil:
		return d.Editor(part)
	default:
		return nil, nil
	}
}

func (d *Driver[T]) updateHook(ctx context.Context, part T, uctx *UpdatePartContext) (shapes.Shape, error) {
	switch {
	case d.UpdateContext != nil:
		return d.UpdateContext(ctx, part, uctx)
	case d.UpdateWith != nil:
		return d.UpdateWith(part, uctx)
	case d.Update != nil:
		return d.Update(part, uctx.Updater)
	default:
		return nil, nil
	}
}

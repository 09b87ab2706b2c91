package display

import (
	"context"
	"net/url"
	"testing"

	"github.com/goliatone/go-displaykit/pkg/content"
	"github.com/goliatone/go-displaykit/pkg/shapes"
)

type bodyPart struct {
	Body string
}

func (*bodyPart) PartType() string { return "BodyPart" }

type titlePart struct {
	Title string
}

func (*titlePart) PartType() string { return "TitlePart" }

func bodyDefinition(t *testing.T) *content.TypePartDefinition {
	t.Helper()
	blogPost := content.NewTypeDefinition("BlogPost").WithPart("BodyPart", "", nil)
	def, ok := blogPost.Part("BodyPart")
	if !ok {
		t.Fatal("definition missing")
	}
	return def
}

func buildContext() BuildPartContext {
	return BuildPartContext{
		DisplayType: "Detail",
		Factory:     shapes.NewFactory(),
	}
}

func TestDriver_MismatchedPartReturnsNilWithoutHooks(t *testing.T) {
	hookCalled := false
	driver := &Driver[*bodyPart]{
		Display: func(*bodyPart) (shapes.Shape, error) {
			hookCalled = true
			return shapes.NewComposite("BodyPart"), nil
		},
		Editor: func(*bodyPart) (shapes.Shape, error) {
			hookCalled = true
			return shapes.NewComposite("BodyPart_Edit"), nil
		},
		Update: func(*bodyPart, Updater) (shapes.Shape, error) {
			hookCalled = true
			return nil, nil
		},
	}

	ctx := context.Background()
	def := bodyDefinition(t)
	part := &titlePart{}

	if shape, err := driver.BuildDisplay(ctx, part, def, buildContext()); shape != nil || err != nil {
		t.Fatalf("display: want (nil, nil), got (%v, %v)", shape, err)
	}
	if shape, err := driver.BuildEditor(ctx, part, def, buildContext()); shape != nil || err != nil {
		t.Fatalf("editor: want (nil, nil), got (%v, %v)", shape, err)
	}
	uctx := UpdatePartContext{BuildPartContext: buildContext()}
	if shape, err := driver.UpdateEditor(ctx, part, def, uctx); shape != nil || err != nil {
		t.Fatalf("update: want (nil, nil), got (%v, %v)", shape, err)
	}
	if hookCalled {
		t.Fatal("no hook may run for a mismatched part type")
	}
}

func TestDriver_HookCascadeRichestWins(t *testing.T) {
	var called string
	driver := &Driver[*bodyPart]{
		DisplayContext: func(context.Context, *bodyPart, *BuildPartContext) (shapes.Shape, error) {
			called = "context"
			return shapes.NewComposite("BodyPart"), nil
		},
		DisplayWith: func(*bodyPart, *BuildPartContext) (shapes.Shape, error) {
			called = "with"
			return shapes.NewComposite("BodyPart"), nil
		},
		Display: func(*bodyPart) (shapes.Shape, error) {
			called = "plain"
			return shapes.NewComposite("BodyPart"), nil
		},
	}

	if _, err := driver.BuildDisplay(context.Background(), &bodyPart{}, bodyDefinition(t), buildContext()); err != nil {
		t.Fatalf("build display: %v", err)
	}
	if called != "context" {
		t.Fatalf("richest hook must win, got %q", called)
	}

	driver.DisplayContext = nil
	if _, err := driver.BuildDisplay(context.Background(), &bodyPart{}, bodyDefinition(t), buildContext()); err != nil {
		t.Fatalf("build display: %v", err)
	}
	if called != "with" {
		t.Fatalf("fallthrough to DisplayWith expected, got %q", called)
	}

	driver.DisplayWith = nil
	if _, err := driver.BuildDisplay(context.Background(), &bodyPart{}, bodyDefinition(t), buildContext()); err != nil {
		t.Fatalf("build display: %v", err)
	}
	if called != "plain" {
		t.Fatalf("fallthrough to Display expected, got %q", called)
	}
}

func TestDriver_NoHooksConfiguredYieldsNil(t *testing.T) {
	driver := &Driver[*bodyPart]{}
	shape, err := driver.BuildDisplay(context.Background(), &bodyPart{}, bodyDefinition(t), buildContext())
	if shape != nil || err != nil {
		t.Fatalf("want (nil, nil) default, got (%v, %v)", shape, err)
	}
}

func TestDriver_FieldPrefixComputation(t *testing.T) {
	var seen []string
	driver := &Driver[*bodyPart]{
		EditorWith: func(_ *bodyPart, bctx *BuildPartContext) (shapes.Shape, error) {
			seen = append(seen, bctx.HTMLFieldPrefix)
			return shapes.NewComposite("BodyPart_Edit"), nil
		},
	}

	def := bodyDefinition(t)

	bctx := buildContext()
	if _, err := driver.BuildEditor(context.Background(), &bodyPart{}, def, bctx); err != nil {
		t.Fatalf("build editor: %v", err)
	}
	bctx.HTMLFieldPrefix = "Parent"
	if _, err := driver.BuildEditor(context.Background(), &bodyPart{}, def, bctx); err != nil {
		t.Fatalf("build editor: %v", err)
	}

	if seen[0] != "BodyPart" {
		t.Fatalf("empty outer prefix: want BodyPart, got %q", seen[0])
	}
	if seen[1] != "Parent.BodyPart" {
		t.Fatalf("outer prefix: want Parent.BodyPart, got %q", seen[1])
	}
}

func TestDriver_BuildDisplayStampsAlternates(t *testing.T) {
	driver := &Driver[*bodyPart]{
		Display: func(*bodyPart) (shapes.Shape, error) {
			return shapes.NewComposite("BodyPart"), nil
		},
	}

	bctx := buildContext()
	bctx.DisplayType = "Summary"
	shape, err := driver.BuildDisplay(context.Background(), &bodyPart{}, bodyDefinition(t), bctx)
	if err != nil {
		t.Fatalf("build display: %v", err)
	}

	meta := shape.ShapeMetadata()
	if meta.Name != "BodyPart" {
		t.Fatalf("shape name: %q", meta.Name)
	}
	values := meta.Alternates.Values()
	if len(values) != 3 || values[2] != "BodyPart_Summary__BlogPost" {
		t.Fatalf("alternates not applied: %v", values)
	}
}

func TestDriver_UpdateEditorReappliesPart(t *testing.T) {
	item := content.NewItem("BlogPost")
	item.Apply("BodyPart", &bodyPart{Body: "old"})

	driver := &Driver[*bodyPart]{
		UpdateContext: func(ctx context.Context, part *bodyPart, uctx *UpdatePartContext) (shapes.Shape, error) {
			if err := uctx.Updater.TryUpdateModel(ctx, part, uctx.HTMLFieldPrefix); err != nil {
				return nil, err
			}
			// Nil shape on purpose: the part must be re-applied regardless.
			return nil, nil
		},
	}

	updater := NewFormUpdater(url.Values{"BodyPart.Body": {"new"}})
	uctx := UpdatePartContext{
		BuildPartContext: buildContext(),
		Updater:          updater,
		Item:             item,
	}

	part, _ := item.Get("BodyPart")
	shape, err := driver.UpdateEditor(context.Background(), part, bodyDefinition(t), uctx)
	if err != nil {
		t.Fatalf("update editor: %v", err)
	}
	if shape != nil {
		t.Fatalf("expected nil shape passthrough, got %v", shape)
	}

	updated, _ := item.Get("BodyPart")
	if got := updated.(*bodyPart).Body; got != "new" {
		t.Fatalf("part not updated and re-applied: %q", got)
	}
}

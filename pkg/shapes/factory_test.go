package shapes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCreate_DefaultComposite(t *testing.T) {
	factory := NewFactory()

	shape, err := factory.Create("BodyPart")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := shape.(*Composite); !ok {
		t.Fatalf("expected composite default, got %T", shape)
	}
	if got := shape.ShapeMetadata().Type; got != "BodyPart" {
		t.Fatalf("metadata type: want BodyPart, got %q", got)
	}
}

func TestCreate_EmptyTypeRejected(t *testing.T) {
	factory := NewFactory()
	if _, err := factory.Create(""); err == nil {
		t.Fatal("expected error for empty shape type")
	}
}

func TestCreate_LifecycleOrder(t *testing.T) {
	var sequence []string

	factory := NewFactory(
		WithOnCreating(func(ctx *CreatingContext) {
			sequence = append(sequence, "creating:"+ctx.ShapeType)
		}),
		WithOnCreated(func(ctx *CreatedContext) {
			sequence = append(sequence, "created:"+ctx.ShapeType)
			if ctx.Shape == nil {
				t.Fatal("created handler received nil shape")
			}
		}),
	)

	if _, err := factory.Create("TitlePart"); err != nil {
		t.Fatalf("create: %v", err)
	}

	want := []string{"creating:TitlePart", "created:TitlePart"}
	if diff := cmp.Diff(want, sequence); diff != "" {
		t.Fatalf("lifecycle order mismatch (-want +got):\n%s", diff)
	}
}

func TestCreate_CreatingHandlerSwapsBase(t *testing.T) {
	factory := NewFactory(WithOnCreating(func(ctx *CreatingContext) {
		ctx.New = func() Shape {
			replacement := NewComposite(ctx.ShapeType)
			replacement.Set("swapped", true)
			return replacement
		}
	}))

	shape, err := factory.Create("Zone")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if swapped, _ := shape.Get("swapped"); swapped != true {
		t.Fatal("creating handler base swap was not honoured")
	}
}

type articleModel struct {
	Title     string
	Published bool
	views     int
}

func TestCreateFrom_PositionalModelWins(t *testing.T) {
	factory := NewFactory()

	shape, err := factory.CreateFrom("Article", Arguments{
		Model: articleModel{Title: "Hello", Published: true, views: 9},
		Named: map[string]any{"Title": "ignored", "Extra": "ignored"},
	})
	if err != nil {
		t.Fatalf("create from: %v", err)
	}

	if title, _ := shape.Get("Title"); title != "Hello" {
		t.Fatalf("positional model should win: got %v", title)
	}
	if _, ok := shape.Get("Extra"); ok {
		t.Fatal("named entries must be ignored when a positional model is present")
	}
	if _, ok := shape.Get("views"); ok {
		t.Fatal("unexported fields must not be copied")
	}
	if published, _ := shape.Get("Published"); published != true {
		t.Fatal("Published field not copied")
	}
}

type ArticleBase struct {
	Title  string
	Author string
}

type shadowedArticle struct {
	ArticleBase
	Title string
}

type linkedArticle struct {
	*ArticleBase
	Slug string
}

func TestCreateFrom_OuterFieldShadowsEmbedded(t *testing.T) {
	factory := NewFactory()

	shape, err := factory.CreateFrom("Article", Arguments{
		Model: shadowedArticle{
			ArticleBase: ArticleBase{Title: "embedded", Author: "ada"},
			Title:       "outer",
		},
	})
	if err != nil {
		t.Fatalf("create from: %v", err)
	}
	if title, _ := shape.Get("Title"); title != "outer" {
		t.Fatalf("outer field must shadow the embedded one, got %v", title)
	}
	if author, _ := shape.Get("Author"); author != "ada" {
		t.Fatalf("promoted field not copied: got %v", author)
	}
}

func TestCreateFrom_NilEmbeddedPointerSkipped(t *testing.T) {
	factory := NewFactory()

	shape, err := factory.CreateFrom("Article", Arguments{
		Model: linkedArticle{Slug: "intro"},
	})
	if err != nil {
		t.Fatalf("create from: %v", err)
	}
	if slug, _ := shape.Get("Slug"); slug != "intro" {
		t.Fatalf("outer field not copied: got %v", slug)
	}
	if _, ok := shape.Get("Title"); ok {
		t.Fatal("fields behind a nil embedded pointer must be skipped")
	}
}

func TestCreateFrom_NamedEntries(t *testing.T) {
	factory := NewFactory()

	shape, err := factory.CreateFrom("Article", Arguments{
		Named: map[string]any{"Title": "Hello", "Count": 3},
	})
	if err != nil {
		t.Fatalf("create from: %v", err)
	}
	if title, _ := shape.Get("Title"); title != "Hello" {
		t.Fatalf("named entry not copied: got %v", title)
	}
	if count, _ := shape.Get("Count"); count != 3 {
		t.Fatalf("named entry not copied verbatim: got %v", count)
	}
}

func TestCreateFrom_NilModel(t *testing.T) {
	factory := NewFactory()

	shape, err := factory.CreateFrom("Article", Arguments{})
	if err != nil {
		t.Fatalf("nil source must not error: %v", err)
	}
	if got := len(shape.Properties()); got != 0 {
		t.Fatalf("expected empty property bag, got %d entries", got)
	}
}

func TestCreateFrom_PointerModel(t *testing.T) {
	factory := NewFactory()

	shape, err := factory.CreateFrom("Article", Arguments{
		Model: &articleModel{Title: "Ptr"},
	})
	if err != nil {
		t.Fatalf("create from: %v", err)
	}
	if title, _ := shape.Get("Title"); title != "Ptr" {
		t.Fatalf("pointer model fields not copied: got %v", title)
	}
}

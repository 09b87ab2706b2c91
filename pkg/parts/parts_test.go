package parts

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/goliatone/go-displaykit/pkg/content"
	"github.com/goliatone/go-displaykit/pkg/display"
	"github.com/goliatone/go-displaykit/pkg/shapes"
)

func blogPostDefinition(t *testing.T) *content.TypePartDefinition {
	t.Helper()
	blogPost := content.NewTypeDefinition("BlogPost").WithPart("BodyPart", "", nil)
	def, ok := blogPost.Part("BodyPart")
	if !ok {
		t.Fatal("definition missing")
	}
	return def
}

func partContext() display.BuildPartContext {
	return display.BuildPartContext{
		DisplayType: "Detail",
		Factory:     shapes.NewFactory(),
	}
}

func TestBodyDriver_DisplaySanitizesMarkup(t *testing.T) {
	driver := NewBodyDriver()
	part := &BodyPart{Body: `<p>Hello</p><script>alert("x")</script>`}

	shape, err := driver.BuildDisplay(context.Background(), part, blogPostDefinition(t), partContext())
	if err != nil {
		t.Fatalf("build display: %v", err)
	}

	html, _ := shape.Get("Html")
	rendered := html.(string)
	if strings.Contains(rendered, "<script>") {
		t.Fatalf("script tag survived sanitation: %q", rendered)
	}
	if !strings.Contains(rendered, "<p>Hello</p>") {
		t.Fatalf("allowed markup stripped: %q", rendered)
	}
	if part.Body != `<p>Hello</p><script>alert("x")</script>` {
		t.Fatal("stored body must keep the raw submission")
	}
}

func TestBodyDriver_EditorCarriesRawBodyAndPrefix(t *testing.T) {
	driver := NewBodyDriver()
	part := &BodyPart{Body: "<p>raw</p>"}

	bctx := partContext()
	bctx.HTMLFieldPrefix = "Parent"
	shape, err := driver.BuildEditor(context.Background(), part, blogPostDefinition(t), bctx)
	if err != nil {
		t.Fatalf("build editor: %v", err)
	}
	if body, _ := shape.Get("Body"); body != "<p>raw</p>" {
		t.Fatalf("editor must carry the raw body: %v", body)
	}
	if prefix, _ := shape.Get("HtmlFieldPrefix"); prefix != "Parent.BodyPart" {
		t.Fatalf("field prefix: %v", prefix)
	}
}

func TestBodyDriver_UpdateBindsAndRedisplays(t *testing.T) {
	driver := NewBodyDriver()
	item := content.NewItem("BlogPost")
	part := &BodyPart{Body: "old"}
	item.Apply("BodyPart", part)

	uctx := display.UpdatePartContext{
		BuildPartContext: partContext(),
		Updater:          display.NewFormUpdater(url.Values{"BodyPart.Body": {"new"}}),
		Item:             item,
	}

	shape, err := driver.UpdateEditor(context.Background(), part, blogPostDefinition(t), uctx)
	if err != nil {
		t.Fatalf("update editor: %v", err)
	}
	if part.Body != "new" {
		t.Fatalf("body not bound: %q", part.Body)
	}
	if body, _ := shape.Get("Body"); body != "new" {
		t.Fatalf("redisplay editor must show the bound value: %v", body)
	}
	if applied, _ := item.Get("BodyPart"); applied != content.Part(part) {
		t.Fatal("part not re-applied onto the item")
	}
}

func TestTitleDriver_NotApplicableToOtherParts(t *testing.T) {
	driver := NewTitleDriver()
	shape, err := driver.BuildDisplay(context.Background(), &BodyPart{}, blogPostDefinition(t), partContext())
	if shape != nil || err != nil {
		t.Fatalf("want (nil, nil) for mismatched part, got (%v, %v)", shape, err)
	}
}

func TestRegisterActivators(t *testing.T) {
	registry := content.NewRegistry()
	RegisterActivators(registry)

	for _, name := range []string{"BodyPart", "TitlePart"} {
		part, err := registry.Activate(name)
		if err != nil {
			t.Fatalf("activate %s: %v", name, err)
		}
		if part.PartType() != name {
			t.Fatalf("activator mismatch: %q", part.PartType())
		}
	}
}

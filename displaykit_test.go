package displaykit_test

import (
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	displaykit "github.com/goliatone/go-displaykit"
	"github.com/goliatone/go-displaykit/pkg/content"
	"github.com/goliatone/go-displaykit/pkg/parts"
	"github.com/goliatone/go-displaykit/pkg/render"
	"github.com/goliatone/go-displaykit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-displaykit/pkg/testsupport"
)

func blogFixture(t *testing.T) (*displaykit.Manager, *content.Item, *parts.BodyPart) {
	t.Helper()

	blogPost := content.NewTypeDefinition("BlogPost").
		WithPart("TitlePart", "", map[string]string{"position": "1"}).
		WithPart("BodyPart", "", map[string]string{"position": "2"})

	manager := displaykit.NewManager(
		displaykit.WithDefinitions(displaykit.NewDefinitionStore(blogPost)),
		displaykit.WithDrivers(parts.NewTitleDriver(), parts.NewBodyDriver()),
	)

	body := &parts.BodyPart{Body: "<p>welcome</p>"}
	item := content.NewItem("BlogPost")
	item.Apply("TitlePart", &parts.TitlePart{Title: "Hello"})
	item.Apply("BodyPart", body)
	return manager, item, body
}

func htmlRenderer(t *testing.T, files fstest.MapFS) render.Renderer {
	t.Helper()
	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	renderer, err := render.NewHTMLRenderer(engine, render.NewResolver(render.WithFSProbe(files, ".tpl")))
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return renderer
}

func TestRenderDisplay_EndToEnd(t *testing.T) {
	manager, item, _ := blogFixture(t)
	renderer := htmlRenderer(t, fstest.MapFS{
		"Content.tpl": {Data: []byte(
			"{% for item in Items %}[{{ item.Title }}{{ item.Html|safe }}]{% endfor %}",
		)},
	})

	out, err := displaykit.RenderDisplay(testsupport.Context(), manager, renderer, item, "", displaykit.RenderOptions{})
	if err != nil {
		t.Fatalf("render display: %v", err)
	}
	if got := string(out); got != "[Hello][<p>welcome</p>]" {
		t.Fatalf("output: %q", got)
	}
}

func TestRenderDisplay_ContentAlternateWins(t *testing.T) {
	manager, item, _ := blogFixture(t)
	renderer := htmlRenderer(t, fstest.MapFS{
		"Content.tpl":                   {Data: []byte("generic")},
		"Content_Detail__BlogPost.tpl":  {Data: []byte("blog detail")},
		"Content_Summary__BlogPost.tpl": {Data: []byte("blog summary")},
	})

	out, err := displaykit.RenderDisplay(testsupport.Context(), manager, renderer, item, "Summary", displaykit.RenderOptions{})
	if err != nil {
		t.Fatalf("render display: %v", err)
	}
	if string(out) != "blog summary" {
		t.Fatalf("output: %q", out)
	}
}

func TestUpdateEditor_EndToEnd(t *testing.T) {
	manager, item, body := blogFixture(t)
	renderer := htmlRenderer(t, fstest.MapFS{
		"ContentEditor.tpl": {Data: []byte(
			"{% for item in Items %}{{ item.Body }}{% endfor %}",
		)},
	})

	out, errs, err := displaykit.UpdateEditor(
		testsupport.Context(), manager, renderer, item,
		url.Values{"BodyPart.Body": {"<p>updated</p>"}},
		"", displaykit.RenderOptions{},
	)
	if err != nil {
		t.Fatalf("update editor: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected binding errors: %v", errs)
	}
	if body.Body != "<p>updated</p>" {
		t.Fatalf("body not bound: %q", body.Body)
	}
	if !strings.Contains(string(out), "updated") {
		t.Fatalf("redisplay output: %q", out)
	}
}

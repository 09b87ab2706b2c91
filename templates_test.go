package displaykit_test

import (
	"io/fs"
	"strings"
	"testing"

	displaykit "github.com/goliatone/go-displaykit"
	"github.com/goliatone/go-displaykit/pkg/testsupport"
)

func TestDefaultTemplatesFS(t *testing.T) {
	for _, name := range []string{"Content.tpl", "ContentEditor.tpl", "BodyPart.tpl", "BodyPart_Edit.tpl", "TitlePart.tpl"} {
		if _, err := fs.Stat(displaykit.DefaultTemplatesFS(), name); err != nil {
			t.Fatalf("bundle missing %s: %v", name, err)
		}
	}
}

func TestNewDefaultRenderer(t *testing.T) {
	manager, item, _ := blogFixture(t)

	renderer, err := displaykit.NewDefaultRenderer()
	if err != nil {
		t.Fatalf("default renderer: %v", err)
	}

	out, err := displaykit.RenderDisplay(testsupport.Context(), manager, renderer, item, "", displaykit.RenderOptions{})
	if err != nil {
		t.Fatalf("render display: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<h1>Hello</h1>") {
		t.Fatalf("title missing: %q", html)
	}
	if !strings.Contains(html, "<p>welcome</p>") {
		t.Fatalf("body missing: %q", html)
	}
}

func TestNewDefaultRenderer_EditorFieldsPerPart(t *testing.T) {
	manager, item, _ := blogFixture(t)

	renderer, err := displaykit.NewDefaultRenderer()
	if err != nil {
		t.Fatalf("default renderer: %v", err)
	}

	out, err := displaykit.RenderEditor(testsupport.Context(), manager, renderer, item, "", displaykit.RenderOptions{})
	if err != nil {
		t.Fatalf("render editor: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `name="TitlePart.Title"`) || !strings.Contains(html, `value="Hello"`) {
		t.Fatalf("title input missing: %q", html)
	}
	if !strings.Contains(html, `name="BodyPart.Body"`) {
		t.Fatalf("body textarea missing: %q", html)
	}
	if strings.Contains(html, `name="TitlePart.Body"`) {
		t.Fatalf("title editor must not emit a body field: %q", html)
	}
}

package definitions

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-displaykit/pkg/content"
)

const blogManifest = `
types:
  - name: BlogPost
    displayName: Blog Post
    settings:
      listable: "true"
    parts:
      - type: TitlePart
      - type: BodyPart
        name: Summary
        settings:
          editor: wysiwyg
`

const blogDocument = `
openapi: 3.0.3
info:
  title: Blog API
  version: 1.0.0
paths: {}
components:
  schemas:
    TitlePart:
      type: object
      properties:
        title:
          type: string
    BodyPart:
      type: object
      properties:
        body:
          type: string
    BlogPost:
      type: object
      x-content-type: true
      title: Blog Post
      properties:
        publishedAt:
          type: string
        title:
          $ref: '#/components/schemas/TitlePart'
        summary:
          $ref: '#/components/schemas/BodyPart'
`

func TestStore_AddAndResolve(t *testing.T) {
	store := NewStore(content.NewTypeDefinition("BlogPost"))

	if _, ok := store.Type("BlogPost"); !ok {
		t.Fatal("seeded definition not resolvable")
	}
	if _, ok := store.Type("LandingPage"); ok {
		t.Fatal("unknown type resolved")
	}
	if err := store.Add(content.NewTypeDefinition("BlogPost")); err == nil {
		t.Fatal("duplicate type must be rejected")
	}

	if err := store.Add(content.NewTypeDefinition("Article")); err != nil {
		t.Fatalf("add: %v", err)
	}
	var names []string
	for _, def := range store.Types() {
		names = append(names, def.Name)
	}
	if diff := cmp.Diff([]string{"Article", "BlogPost"}, names); diff != "" {
		t.Fatalf("types order mismatch (-want +got):\n%s", diff)
	}
}

func TestFromYAML(t *testing.T) {
	defs, err := FromYAML([]byte(blogManifest))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("want 1 definition, got %d", len(defs))
	}

	def := defs[0]
	if def.DisplayName != "Blog Post" {
		t.Fatalf("display name: %q", def.DisplayName)
	}
	if got := def.Setting("listable", ""); got != "true" {
		t.Fatalf("type setting: %q", got)
	}

	title, ok := def.Part("TitlePart")
	if !ok || title.PartType != "TitlePart" {
		t.Fatal("unnamed part must default its name to the part type")
	}
	summary, ok := def.Part("Summary")
	if !ok {
		t.Fatal("named part missing")
	}
	if !summary.IsNamedInstance() {
		t.Fatal("Summary is a named instance")
	}
	if got := summary.Setting("editor", ""); got != "wysiwyg" {
		t.Fatalf("part setting: %q", got)
	}
	if summary.ContentTypeDefinition != def {
		t.Fatal("part must point back at its owning type")
	}
}

func TestFromYAML_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"no types":     "types: []",
		"missing name": "types:\n  - displayName: Oops",
		"untyped part": "types:\n  - name: Page\n    parts:\n      - name: Body",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := FromYAML([]byte(doc)); err == nil {
				t.Fatal("want error")
			}
		})
	}
}

func TestFromOpenAPI(t *testing.T) {
	defs, err := FromOpenAPI(context.Background(), []byte(blogDocument))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("only flagged schemas become content types, got %d", len(defs))
	}

	def := defs[0]
	if def.Name != "BlogPost" || def.DisplayName != "Blog Post" {
		t.Fatalf("definition header: %q / %q", def.Name, def.DisplayName)
	}

	summary, ok := def.Part("summary")
	if !ok || summary.PartType != "BodyPart" {
		t.Fatal("ref property must attach the referenced schema as a part")
	}
	title, ok := def.Part("title")
	if !ok || title.PartType != "TitlePart" {
		t.Fatal("title part missing")
	}
	if got := def.Setting("field.publishedAt.type", ""); got != "string" {
		t.Fatalf("scalar property must survive as a field setting: %q", got)
	}
}

func TestFromOpenAPI_NoFlaggedSchemas(t *testing.T) {
	doc := strings.ReplaceAll(blogDocument, "x-content-type: true", "x-content-type: false")
	if _, err := FromOpenAPI(context.Background(), []byte(doc)); err == nil {
		t.Fatal("want error when nothing is flagged")
	}
}

func TestLoadYAMLFS(t *testing.T) {
	fsys := fstest.MapFS{
		"definitions/types.yaml": {Data: []byte(blogManifest)},
	}

	store, err := LoadYAMLFS(fsys, "definitions/types.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := store.Type("BlogPost"); !ok {
		t.Fatal("loaded store must resolve BlogPost")
	}

	if _, err := LoadYAMLFS(fsys, "definitions/missing.yaml"); err == nil {
		t.Fatal("want error for missing manifest")
	}
}

func TestLoadOpenAPIFS(t *testing.T) {
	fsys := fstest.MapFS{
		"api/openapi.yaml": {Data: []byte(blogDocument)},
	}

	store, err := LoadOpenAPIFS(context.Background(), fsys, "api/openapi.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def, ok := store.Type("BlogPost")
	if !ok {
		t.Fatal("loaded store must resolve BlogPost")
	}
	if len(def.Parts) != 2 {
		t.Fatalf("want 2 parts, got %d", len(def.Parts))
	}
}

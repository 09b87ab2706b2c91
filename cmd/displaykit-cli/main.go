package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	displaykit "github.com/goliatone/go-displaykit"
	"github.com/goliatone/go-displaykit/pkg/content"
	"github.com/goliatone/go-displaykit/pkg/definitions"
	"github.com/goliatone/go-displaykit/pkg/editor"
	"github.com/goliatone/go-displaykit/pkg/parts"
	"github.com/goliatone/go-displaykit/pkg/render"
	"github.com/goliatone/go-displaykit/pkg/render/template/gotemplate"
)

func main() {
	manifest := flag.String("definitions", "definitions.yaml", "YAML content type manifest")
	openapiDoc := flag.String("openapi", "", "derive content types from an OpenAPI document instead of a manifest")
	contentType := flag.String("type", "", "content type to build (defaults to the first defined)")
	displayType := flag.String("display", "Detail", "display type for display rendering")
	templates := flag.String("templates", "templates", "template directory")
	extension := flag.String("ext", ".tpl", "template file extension")
	format := flag.String("format", "html", "output format, by registered renderer name")
	output := flag.String("output", "", "output file (stdout if empty)")
	editorMode := flag.Bool("editor", false, "render the editor tree instead of the display tree")
	interactive := flag.Bool("edit", false, "prompt for part values, bind them, and render the redisplay editor")
	flag.Parse()

	ctx := context.Background()

	store, err := loadStore(ctx, *manifest, *openapiDoc)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}

	typeDef, err := pickType(store, *contentType)
	if err != nil {
		log.Fatalf("Failed to resolve content type: %v", err)
	}

	item, err := buildItem(typeDef)
	if err != nil {
		log.Fatalf("Failed to build item: %v", err)
	}

	manager := displaykit.NewManager(
		displaykit.WithDefinitions(store),
		displaykit.WithDrivers(parts.NewTitleDriver(), parts.NewBodyDriver()),
	)

	registry, err := newRendererRegistry(*templates, *extension)
	if err != nil {
		log.Fatalf("Failed to build renderers: %v", err)
	}
	renderer, err := registry.Get(*format)
	if err != nil {
		log.Fatalf("Failed to select output format: %v", err)
	}

	var out []byte
	switch {
	case *interactive:
		session := editor.NewSession()
		values, err := session.CollectValues(ctx, item, typeDef)
		if err != nil {
			log.Fatalf("Failed to collect values: %v", err)
		}
		rendered, errs, err := displaykit.UpdateEditor(ctx, manager, renderer, item, values, "", displaykit.RenderOptions{})
		if err != nil {
			log.Fatalf("Failed to update editor: %v", err)
		}
		for path, messages := range errs {
			for _, message := range messages {
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, message)
			}
		}
		out = rendered
	case *editorMode:
		out, err = displaykit.RenderEditor(ctx, manager, renderer, item, "", displaykit.RenderOptions{})
		if err != nil {
			log.Fatalf("Failed to render editor: %v", err)
		}
	default:
		out, err = displaykit.RenderDisplay(ctx, manager, renderer, item, *displayType, displaykit.RenderOptions{})
		if err != nil {
			log.Fatalf("Failed to render display: %v", err)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

func loadStore(ctx context.Context, manifest, openapiDoc string) (*definitions.Store, error) {
	if openapiDoc != "" {
		return definitions.LoadOpenAPIFS(ctx, os.DirFS("."), openapiDoc)
	}
	return definitions.LoadYAMLFS(os.DirFS("."), manifest)
}

func pickType(store *definitions.Store, name string) (*content.TypeDefinition, error) {
	if name != "" {
		typeDef, ok := store.Type(name)
		if !ok {
			return nil, fmt.Errorf("content type %q not defined", name)
		}
		return typeDef, nil
	}
	defs := store.Types()
	if len(defs) == 0 {
		return nil, fmt.Errorf("no content types defined")
	}
	return defs[0], nil
}

// buildItem activates every attached part the registry knows about and welds
// it under the part definition's name.
func buildItem(typeDef *content.TypeDefinition) (*content.Item, error) {
	registry := content.NewRegistry()
	parts.RegisterActivators(registry)

	item := content.NewItem(typeDef.Name)
	for _, def := range typeDef.Parts {
		if !registry.Has(def.PartType) {
			continue
		}
		part, err := registry.Activate(def.PartType)
		if err != nil {
			return nil, err
		}
		item.Apply(def.Name, part)
	}
	return item, nil
}

func newRendererRegistry(templatesDir, extension string) (*render.Registry, error) {
	engine, err := gotemplate.New(
		gotemplate.WithBaseDir(templatesDir),
		gotemplate.WithExtension(extension),
	)
	if err != nil {
		return nil, err
	}
	resolver := render.NewResolver(render.WithFSProbe(os.DirFS(templatesDir), extension))
	html, err := render.NewHTMLRenderer(engine, resolver)
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(html), nil
}

package definitions

import (
	"context"
	"fmt"
	"io/fs"

	internaldefs "github.com/goliatone/go-displaykit/internal/definitions"
	"github.com/goliatone/go-displaykit/pkg/content"
)

// FromYAML parses a YAML content-type manifest into definitions.
func FromYAML(data []byte) ([]*content.TypeDefinition, error) {
	return internaldefs.ParseYAML(data)
}

// FromOpenAPI derives definitions from an OpenAPI document's component
// schemas flagged with x-content-type.
func FromOpenAPI(ctx context.Context, data []byte) ([]*content.TypeDefinition, error) {
	return internaldefs.ParseOpenAPI(ctx, data)
}

// LoadYAMLFS reads a manifest from fsys and returns a populated store.
func LoadYAMLFS(fsys fs.FS, path string) (*Store, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("definitions: read manifest %s: %w", path, err)
	}
	defs, err := FromYAML(data)
	if err != nil {
		return nil, err
	}
	return storeFrom(defs)
}

// LoadOpenAPIFS reads an OpenAPI document from fsys and returns a populated
// store.
func LoadOpenAPIFS(ctx context.Context, fsys fs.FS, path string) (*Store, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("definitions: read document %s: %w", path, err)
	}
	defs, err := FromOpenAPI(ctx, data)
	if err != nil {
		return nil, err
	}
	return storeFrom(defs)
}

func storeFrom(defs []*content.TypeDefinition) (*Store, error) {
	store := &Store{}
	for _, def := range defs {
		if err := store.Add(def); err != nil {
			return nil, err
		}
	}
	return store, nil
}

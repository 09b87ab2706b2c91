package definitions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-displaykit/pkg/content"
)

const schemaRefPrefix = "#/components/schemas/"

// ParseOpenAPI derives content type definitions from an OpenAPI document's
// component schemas. Every schema flagged with x-content-type becomes a
// content type; each property referencing another component schema becomes a
// part attachment (property name = instance name, referenced schema = part
// type), and scalar properties are preserved as field settings so editors can
// surface them.
func ParseOpenAPI(ctx context.Context, data []byte) ([]*content.TypeDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("definitions: openapi document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("definitions: load openapi document: %w", err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("definitions: openapi document has no component schemas")
	}

	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []*content.TypeDefinition
	for _, name := range names {
		ref := spec.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		if !isContentType(ref.Value) {
			continue
		}
		def, err := convertSchema(name, ref.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, def)
	}
	if len(out) == 0 {
		return nil, errors.New("definitions: no schemas flagged x-content-type")
	}
	return out, nil
}

func isContentType(schema *openapi3.Schema) bool {
	flag, ok := schema.Extensions["x-content-type"]
	if !ok {
		return false
	}
	enabled, ok := flag.(bool)
	return ok && enabled
}

func convertSchema(name string, schema *openapi3.Schema) (*content.TypeDefinition, error) {
	def := content.NewTypeDefinition(name).WithDisplayName(schema.Title)

	propertyNames := make([]string, 0, len(schema.Properties))
	for property := range schema.Properties {
		propertyNames = append(propertyNames, property)
	}
	sort.Strings(propertyNames)

	for _, property := range propertyNames {
		ref := schema.Properties[property]
		if ref == nil {
			continue
		}
		if partType := refSchemaName(ref.Ref); partType != "" {
			def.WithPart(partType, property, partSettings(ref.Value))
			continue
		}
		if ref.Value != nil {
			if kind := firstType(ref.Value.Type); kind != "" {
				def.WithSetting("field."+property+".type", kind)
			}
		}
	}

	if len(def.Parts) == 0 {
		return nil, fmt.Errorf("definitions: content type %q attaches no parts", name)
	}
	return def, nil
}

func partSettings(schema *openapi3.Schema) map[string]string {
	if schema == nil || len(schema.Extensions) == 0 {
		return nil
	}
	settings := make(map[string]string)
	for key, value := range schema.Extensions {
		trimmed := strings.TrimPrefix(key, "x-")
		if trimmed == key {
			continue
		}
		if text, ok := value.(string); ok {
			settings[trimmed] = text
		}
	}
	if len(settings) == 0 {
		return nil
	}
	return settings
}

func refSchemaName(ref string) string {
	if !strings.HasPrefix(ref, schemaRefPrefix) {
		return ""
	}
	return strings.TrimPrefix(ref, schemaRefPrefix)
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

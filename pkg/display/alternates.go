package display

import (
	"github.com/goliatone/go-displaykit/pkg/content"
	"github.com/goliatone/go-displaykit/pkg/shapes"
)

// PartAlternates computes the template override candidates for a part
// attachment, most general first; the resolver picks the most specific
// candidate present. The two instance-qualified variants only exist when the
// attachment uses an instance name distinct from its part type name.
func PartAlternates(def *content.TypePartDefinition, displayType string) []string {
	if def == nil || def.ContentTypeDefinition == nil {
		return nil
	}

	partType := def.PartType
	contentType := def.ContentTypeDefinition.Name

	alternates := []string{
		partType + "_" + displayType,
		partType + "__" + contentType,
		partType + "_" + displayType + "__" + contentType,
	}
	if def.IsNamedInstance() {
		alternates = append(alternates,
			partType+"__"+contentType+"__"+def.Name,
			partType+"_"+displayType+"__"+contentType+"__"+def.Name,
		)
	}
	return alternates
}

// ApplyPartDisplay stamps a freshly built part shape: alternates appended in
// order, display type recorded, and the shape's declared name set to the
// attachment's instance name.
func ApplyPartDisplay(shape shapes.Shape, def *content.TypePartDefinition, displayType string) {
	if shape == nil || def == nil {
		return
	}
	meta := shape.ShapeMetadata()
	meta.Alternates.Add(PartAlternates(def, displayType)...)
	meta.Name = def.Name
	if meta.DisplayType == "" {
		meta.DisplayType = displayType
	}
}

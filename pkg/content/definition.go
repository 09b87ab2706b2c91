package content

// TypeDefinition is the metadata record for a content type: its name, the
// parts attached to it, and free-form settings. Definitions are built once by
// a loader and treated as immutable per request.
type TypeDefinition struct {
	Name        string
	DisplayName string
	Parts       []*TypePartDefinition
	Settings    map[string]string
}

// TypePartDefinition describes how one part is attached to a content type.
// Name is the attachment's instance name; it differs from PartType when the
// type attaches several instances of the same part type.
type TypePartDefinition struct {
	PartType string
	Name     string
	Settings map[string]string

	// ContentTypeDefinition points back to the owning type definition.
	ContentTypeDefinition *TypeDefinition
}

// NewTypeDefinition constructs an empty content type definition.
func NewTypeDefinition(name string) *TypeDefinition {
	return &TypeDefinition{Name: name}
}

// WithDisplayName sets the human-readable name and returns the definition for
// chaining.
func (d *TypeDefinition) WithDisplayName(displayName string) *TypeDefinition {
	d.DisplayName = displayName
	return d
}

// WithSetting records a type-level setting and returns the definition.
func (d *TypeDefinition) WithSetting(key, value string) *TypeDefinition {
	if d.Settings == nil {
		d.Settings = make(map[string]string)
	}
	d.Settings[key] = value
	return d
}

// WithPart attaches a part under the given instance name, wiring the back
// reference. An empty name defaults to the part type name, the common case of
// a single attachment.
func (d *TypeDefinition) WithPart(partType, name string, settings map[string]string) *TypeDefinition {
	if name == "" {
		name = partType
	}
	d.Parts = append(d.Parts, &TypePartDefinition{
		PartType:              partType,
		Name:                  name,
		Settings:              settings,
		ContentTypeDefinition: d,
	})
	return d
}

// Setting returns the type-level setting for key, or the fallback when unset.
func (d *TypeDefinition) Setting(key, fallback string) string {
	if value, ok := d.Settings[key]; ok {
		return value
	}
	return fallback
}

// Part returns the attachment with the given instance name.
func (d *TypeDefinition) Part(name string) (*TypePartDefinition, bool) {
	for _, part := range d.Parts {
		if part.Name == name {
			return part, true
		}
	}
	return nil, false
}

// IsNamedInstance reports whether the attachment uses an instance name
// distinct from its part type name.
func (p *TypePartDefinition) IsNamedInstance() bool {
	return p.Name != p.PartType
}

// Setting returns the attachment setting for key, or the fallback when unset.
func (p *TypePartDefinition) Setting(key, fallback string) string {
	if value, ok := p.Settings[key]; ok {
		return value
	}
	return fallback
}

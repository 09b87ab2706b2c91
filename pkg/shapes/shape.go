package shapes

import "sort"

// Shape is the capability contract every renderable fragment satisfies: a
// metadata block describing how the template resolver should treat the
// fragment, plus an arbitrary property bag renderers read values from.
// Identifier, class, and attribute accessors exist so markup-producing
// renderers can decorate the outer element without knowing the concrete type.
type Shape interface {
	ShapeMetadata() *Metadata

	Get(name string) (any, bool)
	Set(name string, value any)
	Properties() map[string]any

	ID() string
	SetID(id string)
	Classes() []string
	AddClass(class string)
	Attributes() map[string]string
	SetAttribute(name, value string)
}

// Composite is the default Shape implementation: a bare metadata block plus a
// map-backed property bag. The factory hands one out whenever no base factory
// or typed model is supplied.
type Composite struct {
	meta    Metadata
	props   map[string]any
	id      string
	classes []string
	attrs   map[string]string
}

// NewComposite constructs an empty composite shape of the given type.
func NewComposite(shapeType string) *Composite {
	return &Composite{
		meta: Metadata{Type: shapeType},
	}
}

// ShapeMetadata returns the mutable metadata block.
func (c *Composite) ShapeMetadata() *Metadata {
	return &c.meta
}

// Get looks up a property by name.
func (c *Composite) Get(name string) (any, bool) {
	if c.props == nil {
		return nil, false
	}
	value, ok := c.props[name]
	return value, ok
}

// Set stores a property by name, replacing any previous value.
func (c *Composite) Set(name string, value any) {
	if name == "" {
		return
	}
	if c.props == nil {
		c.props = make(map[string]any)
	}
	c.props[name] = value
}

// Properties returns a copy of the property bag.
func (c *Composite) Properties() map[string]any {
	out := make(map[string]any, len(c.props))
	for name, value := range c.props {
		out[name] = value
	}
	return out
}

// PropertyNames returns the sorted property names, useful for deterministic
// rendering and tests.
func (c *Composite) PropertyNames() []string {
	names := make([]string, 0, len(c.props))
	for name := range c.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ID returns the markup identifier.
func (c *Composite) ID() string { return c.id }

// SetID assigns the markup identifier.
func (c *Composite) SetID(id string) { c.id = id }

// Classes returns the accumulated CSS classes.
func (c *Composite) Classes() []string { return c.classes }

// AddClass appends a CSS class, skipping duplicates.
func (c *Composite) AddClass(class string) {
	c.classes = appendClass(c.classes, class)
}

// Attributes returns the attribute map, allocating it on first use.
func (c *Composite) Attributes() map[string]string {
	if c.attrs == nil {
		c.attrs = make(map[string]string)
	}
	return c.attrs
}

// SetAttribute stores an attribute by name.
func (c *Composite) SetAttribute(name, value string) {
	if name == "" {
		return
	}
	c.Attributes()[name] = value
}

func appendClass(classes []string, class string) []string {
	if class == "" {
		return classes
	}
	for _, existing := range classes {
		if existing == class {
			return classes
		}
	}
	return append(classes, class)
}

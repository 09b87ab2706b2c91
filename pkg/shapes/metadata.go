package shapes

// Metadata describes how the template resolver should treat a shape: its
// semantic type, the display type it was built for, the instance name, and the
// ordered alternate candidates a host can override templates with. Position
// carries the z-order hint used when sibling shapes are composed.
type Metadata struct {
	// Name is the shape's declared name. For part shapes this is always the
	// part's instance name, which may differ from the part's type name when a
	// content type attaches the same part more than once.
	Name string

	// Type is the semantic shape type, doubling as the base template name.
	Type string

	// DisplayType names the rendering variant the shape was built for, for
	// example "Detail" or "Summary".
	DisplayType string

	// Position orders the shape among its siblings.
	Position string

	// Alternates lists template candidates in most-general-first order; the
	// resolver picks the most specific candidate present.
	Alternates Alternates

	// Wrappers names shapes the renderer should wrap this one in, outermost
	// last.
	Wrappers []string
}

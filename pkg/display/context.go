package display

import (
	"github.com/goliatone/go-displaykit/pkg/content"
	"github.com/goliatone/go-displaykit/pkg/shapes"
)

// BuildPartContext carries the per-operation inputs a driver hook needs. The
// type/part definition is threaded through the context explicitly rather than
// stored on the driver, so one driver instance can serve concurrent requests.
type BuildPartContext struct {
	// DisplayType names the rendering variant being built, e.g. "Detail".
	DisplayType string

	// HTMLFieldPrefix scopes form input names. The manager seeds the outer
	// prefix; forPart appends the part's instance name before hooks run.
	HTMLFieldPrefix string

	// Definition is the attachment being built, never nil inside hooks.
	Definition *content.TypePartDefinition

	// Factory produces the shapes hooks return.
	Factory *shapes.Factory
}

// UpdatePartContext extends the build context with the update collaborators:
// the model binder reading submitted values and the item the mutated part is
// written back onto.
type UpdatePartContext struct {
	BuildPartContext

	Updater Updater
	Item    *content.Item
}

// forPart derives the hook-facing context: same display type and factory,
// field prefix extended with the attachment's instance name, definition set.
func (c BuildPartContext) forPart(def *content.TypePartDefinition) BuildPartContext {
	child := c
	child.Definition = def
	child.HTMLFieldPrefix = joinFieldPrefix(c.HTMLFieldPrefix, def.Name)
	return child
}

// joinFieldPrefix composes dotted form-field prefixes; an empty outer prefix
// yields the name alone.
func joinFieldPrefix(outer, name string) string {
	if outer == "" {
		return name
	}
	if name == "" {
		return outer
	}
	return outer + "." + name
}

package shapes

import "reflect"

// Wrapper decorates an arbitrary model value with the Shape contract. It is
// the static rendition of a runtime proxy: the original model is held as-is,
// property reads resolve against its exported fields through the cached
// descriptor table, and writes to unknown names land in an overflow bag so the
// model type never needs modification.
type Wrapper struct {
	meta    Metadata
	source  any
	model   reflect.Value // struct or addressable struct via pointer
	fields  map[string]fieldDescriptor
	extra   map[string]any
	id      string
	classes []string
	attrs   map[string]string
}

// Wrap builds a Wrapper around model. Pass a pointer when property writes
// should reach the underlying fields; a non-pointer model still supports reads
// with writes diverted to the overflow bag.
func Wrap(model any, shapeType string) *Wrapper {
	w := &Wrapper{
		meta: Metadata{Type: shapeType},
	}
	if model == nil {
		return w
	}
	w.source = model

	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer && !value.IsNil() {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return w
	}

	w.model = value
	descriptors := descriptorsFor(value.Type())
	w.fields = make(map[string]fieldDescriptor, len(descriptors))
	for _, descriptor := range descriptors {
		w.fields[descriptor.name] = descriptor
	}
	return w
}

// Model returns the wrapped value as it was handed to Wrap, or nil when the
// wrapper is empty.
func (w *Wrapper) Model() any { return w.source }

// ShapeMetadata returns the mutable metadata block.
func (w *Wrapper) ShapeMetadata() *Metadata { return &w.meta }

// Get resolves a property: overflow bag first, then the model's fields.
func (w *Wrapper) Get(name string) (any, bool) {
	if value, ok := w.extra[name]; ok {
		return value, true
	}
	descriptor, ok := w.fields[name]
	if !ok {
		return nil, false
	}
	field, err := w.model.FieldByIndexErr(descriptor.index)
	if err != nil {
		return nil, false
	}
	return field.Interface(), true
}

// Set writes a property. Names matching a settable model field update the
// field in place; everything else goes to the overflow bag.
func (w *Wrapper) Set(name string, value any) {
	if name == "" {
		return
	}
	if descriptor, ok := w.fields[name]; ok && w.model.CanSet() {
		if field, err := w.model.FieldByIndexErr(descriptor.index); err == nil {
			incoming := reflect.ValueOf(value)
			if field.CanSet() && incoming.IsValid() && incoming.Type().AssignableTo(field.Type()) {
				field.Set(incoming)
				return
			}
		}
	}
	if w.extra == nil {
		w.extra = make(map[string]any)
	}
	w.extra[name] = value
}

// Properties merges the model's fields with the overflow bag; overflow entries
// shadow fields of the same name. Fields behind a nil embedded pointer are
// omitted.
func (w *Wrapper) Properties() map[string]any {
	out := make(map[string]any, len(w.fields)+len(w.extra))
	for name, descriptor := range w.fields {
		field, err := w.model.FieldByIndexErr(descriptor.index)
		if err != nil {
			continue
		}
		out[name] = field.Interface()
	}
	for name, value := range w.extra {
		out[name] = value
	}
	return out
}

// ID returns the markup identifier.
func (w *Wrapper) ID() string { return w.id }

// SetID assigns the markup identifier.
func (w *Wrapper) SetID(id string) { w.id = id }

// Classes returns the accumulated CSS classes.
func (w *Wrapper) Classes() []string { return w.classes }

// AddClass appends a CSS class, skipping duplicates.
func (w *Wrapper) AddClass(class string) {
	w.classes = appendClass(w.classes, class)
}

// Attributes returns the attribute map, allocating it on first use.
func (w *Wrapper) Attributes() map[string]string {
	if w.attrs == nil {
		w.attrs = make(map[string]string)
	}
	return w.attrs
}

// SetAttribute stores an attribute by name.
func (w *Wrapper) SetAttribute(name, value string) {
	if name == "" {
		return
	}
	w.Attributes()[name] = value
}

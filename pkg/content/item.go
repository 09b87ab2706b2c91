package content

import (
	"sort"

	"github.com/google/uuid"
)

// Item is a content entity composed of named parts. Part names follow the
// attachment's instance name from the content type definition, which lets a
// type attach the same part type more than once under different names.
type Item struct {
	ID          string
	ContentType string

	parts map[string]Part
	order []string
}

// NewItem constructs an empty item of the given content type with a fresh ID.
func NewItem(contentType string) *Item {
	return &Item{
		ID:          uuid.NewString(),
		ContentType: contentType,
	}
}

// Apply welds the part onto the item under the given instance name, replacing
// any previous part of that name. Editors call this after update so mutated
// parts are written back even when the part value is not a pointer.
func (i *Item) Apply(name string, part Part) {
	if name == "" || part == nil {
		return
	}
	if i.parts == nil {
		i.parts = make(map[string]Part)
	}
	if _, exists := i.parts[name]; !exists {
		i.order = append(i.order, name)
	}
	i.parts[name] = part
}

// Get returns the part welded under the instance name.
func (i *Item) Get(name string) (Part, bool) {
	part, ok := i.parts[name]
	return part, ok
}

// Names returns the part instance names in weld order.
func (i *Item) Names() []string {
	return append([]string(nil), i.order...)
}

// SortedNames returns the part instance names alphabetically, for
// deterministic iteration when weld order is irrelevant.
func (i *Item) SortedNames() []string {
	names := i.Names()
	sort.Strings(names)
	return names
}

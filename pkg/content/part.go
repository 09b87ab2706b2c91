package content

// Part is a typed, reusable data fragment attached to a content item. The
// type name is declared by the implementation rather than derived through
// reflection, so drivers can match on it without introspection.
type Part interface {
	PartType() string
}

// As retrieves the named part from the item when its concrete type matches T.
func As[T Part](item *Item, name string) (T, bool) {
	var zero T
	if item == nil {
		return zero, false
	}
	part, ok := item.Get(name)
	if !ok {
		return zero, false
	}
	typed, ok := part.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

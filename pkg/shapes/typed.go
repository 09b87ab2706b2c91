package shapes

import "fmt"

// NewTyped allocates a shape whose runtime surface matches T. When *T already
// satisfies the Shape contract the instance is returned directly, so callers
// observe exactly the requested type with no wrapper in between. Any other T
// is decorated with a Wrapper that exposes T's exported fields as shape
// properties. The initializer runs against the instance before lifecycle
// handlers see it.
func NewTyped[T any](f *Factory, shapeType string, init func(*T) error) (Shape, error) {
	if f == nil {
		return nil, fmt.Errorf("shapes: factory is required to create %q", shapeType)
	}

	instance := new(T)
	if init != nil {
		if err := init(instance); err != nil {
			return nil, fmt.Errorf("shapes: initialise %q: %w", shapeType, err)
		}
	}

	var shape Shape
	if typed, ok := any(instance).(Shape); ok {
		shape = typed
	} else {
		shape = Wrap(instance, shapeType)
	}

	return f.Create(shapeType, WithBase(func() Shape { return shape }))
}

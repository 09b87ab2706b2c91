package shapes

// CreatingContext is handed to creating handlers before the base factory
// runs. Handlers may swap the base factory to substitute the instance about
// to be produced.
type CreatingContext struct {
	ShapeType string

	// New produces the shape instance; handlers can replace it.
	New func() Shape
}

// CreatedContext is handed to created handlers after the instance exists.
type CreatedContext struct {
	ShapeType string
	Shape     Shape
}

// CreatingHandler observes and optionally alters shape creation.
type CreatingHandler func(*CreatingContext)

// CreatedHandler observes freshly created shapes.
type CreatedHandler func(*CreatedContext)

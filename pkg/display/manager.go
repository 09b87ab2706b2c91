package display

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-displaykit/pkg/content"
	"github.com/goliatone/go-displaykit/pkg/shapes"
)

// EditorDisplayType is the display type stamped on editor shapes, giving
// hosts a dedicated alternate axis for edit templates.
const EditorDisplayType = "Edit"

const defaultDisplayType = "Detail"

// DefinitionSource resolves the content type definition for an item.
// pkg/definitions.Store satisfies it.
type DefinitionSource interface {
	Type(name string) (*content.TypeDefinition, bool)
}

// Option customises the manager configuration.
type Option func(*Manager)

// WithDrivers registers part drivers, probed in registration order.
func WithDrivers(drivers ...PartDriver) Option {
	return func(m *Manager) {
		for _, driver := range drivers {
			if driver != nil {
				m.drivers = append(m.drivers, driver)
			}
		}
	}
}

// WithFactory injects the shape factory used for parent and part shapes.
func WithFactory(factory *shapes.Factory) Option {
	return func(m *Manager) {
		m.factory = factory
	}
}

// WithDefinitions injects the content definition source.
func WithDefinitions(source DefinitionSource) Option {
	return func(m *Manager) {
		m.definitions = source
	}
}

// WithDefaultDisplayType overrides the display type used when a request
// omits one. The built-in default is "Detail".
func WithDefaultDisplayType(displayType string) Option {
	return func(m *Manager) {
		if displayType != "" {
			m.displayType = displayType
		}
	}
}

// Manager is the rendering orchestrator's entry surface: it walks every part
// attached to a content item, probes each registered driver (a nil shape means
// "not applicable", keep trying), and composes the resulting part shapes into
// a parent shape ordered by position.
type Manager struct {
	drivers     []PartDriver
	factory     *shapes.Factory
	definitions DefinitionSource
	displayType string
}

// NewManager constructs a Manager applying any provided options. A missing
// factory is initialised with a plain shapes.NewFactory so callers can start
// with a single constructor call.
func NewManager(options ...Option) *Manager {
	m := &Manager{
		displayType: defaultDisplayType,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	if m.factory == nil {
		m.factory = shapes.NewFactory()
	}
	return m
}

// Factory exposes the manager's shape factory for callers composing extra
// shapes around the managed ones.
func (m *Manager) Factory() *shapes.Factory { return m.factory }

// BuildDisplay builds the display shape tree for an item. An empty
// displayType falls back to the configured default.
func (m *Manager) BuildDisplay(ctx context.Context, item *content.Item, displayType string) (shapes.Shape, error) {
	typeDef, err := m.definitionFor(item)
	if err != nil {
		return nil, err
	}
	if displayType == "" {
		displayType = m.displayType
	}

	parent, err := m.factory.Create("Content")
	if err != nil {
		return nil, err
	}
	meta := parent.ShapeMetadata()
	meta.DisplayType = displayType
	meta.Alternates.Add(
		"Content_"+displayType,
		"Content__"+item.ContentType,
		"Content_"+displayType+"__"+item.ContentType,
	)

	bctx := BuildPartContext{
		DisplayType: displayType,
		Factory:     m.factory,
	}

	build := func(ctx context.Context, part content.Part, def *content.TypePartDefinition, driver PartDriver) (shapes.Shape, error) {
		return driver.BuildDisplay(ctx, part, def, bctx)
	}
	if err := m.buildParts(ctx, item, typeDef, parent, build); err != nil {
		return nil, err
	}
	return parent, nil
}

// BuildEditor builds the editor shape tree for an item. htmlFieldPrefix seeds
// the outer form-field prefix; pass "" for a standalone editor.
func (m *Manager) BuildEditor(ctx context.Context, item *content.Item, htmlFieldPrefix string) (shapes.Shape, error) {
	typeDef, err := m.definitionFor(item)
	if err != nil {
		return nil, err
	}

	parent, err := m.factory.Create("ContentEditor")
	if err != nil {
		return nil, err
	}
	meta := parent.ShapeMetadata()
	meta.DisplayType = EditorDisplayType
	meta.Alternates.Add("ContentEditor__" + item.ContentType)

	bctx := BuildPartContext{
		DisplayType:     EditorDisplayType,
		HTMLFieldPrefix: htmlFieldPrefix,
		Factory:         m.factory,
	}

	build := func(ctx context.Context, part content.Part, def *content.TypePartDefinition, driver PartDriver) (shapes.Shape, error) {
		return driver.BuildEditor(ctx, part, def, bctx)
	}
	if err := m.buildParts(ctx, item, typeDef, parent, build); err != nil {
		return nil, err
	}
	return parent, nil
}

// UpdateEditor binds submitted values through every applicable driver and
// returns the redisplay editor tree. Drivers re-apply mutated parts onto the
// item themselves; binding problems are reported through the updater, not as
// errors.
func (m *Manager) UpdateEditor(ctx context.Context, item *content.Item, updater Updater, htmlFieldPrefix string) (shapes.Shape, error) {
	if updater == nil {
		return nil, errors.New("display: updater is required")
	}
	typeDef, err := m.definitionFor(item)
	if err != nil {
		return nil, err
	}

	parent, err := m.factory.Create("ContentEditor")
	if err != nil {
		return nil, err
	}
	meta := parent.ShapeMetadata()
	meta.DisplayType = EditorDisplayType
	meta.Alternates.Add("ContentEditor__" + item.ContentType)

	uctx := UpdatePartContext{
		BuildPartContext: BuildPartContext{
			DisplayType:     EditorDisplayType,
			HTMLFieldPrefix: htmlFieldPrefix,
			Factory:         m.factory,
		},
		Updater: updater,
		Item:    item,
	}

	build := func(ctx context.Context, part content.Part, def *content.TypePartDefinition, driver PartDriver) (shapes.Shape, error) {
		return driver.UpdateEditor(ctx, part, def, uctx)
	}
	if err := m.buildParts(ctx, item, typeDef, parent, build); err != nil {
		return nil, err
	}
	return parent, nil
}

type buildFunc func(ctx context.Context, part content.Part, def *content.TypePartDefinition, driver PartDriver) (shapes.Shape, error)

func (m *Manager) buildParts(ctx context.Context, item *content.Item, typeDef *content.TypeDefinition, parent shapes.Shape, build buildFunc) error {
	var children []shapes.Shape

	for _, def := range typeDef.Parts {
		part, ok := item.Get(def.Name)
		if !ok {
			continue
		}
		for _, driver := range m.drivers {
			if err := ctx.Err(); err != nil {
				return err
			}
			shape, err := build(ctx, part, def, driver)
			if err != nil {
				return fmt.Errorf("display: build part %q: %w", def.Name, err)
			}
			if shape == nil {
				continue
			}
			if pos := shape.ShapeMetadata().Position; pos == "" {
				shape.ShapeMetadata().Position = def.Setting("position", "")
			}
			children = append(children, shape)
			parent.Set(def.Name, shape)
		}
	}

	sortByPosition(children)
	parent.Set("Items", children)
	return nil
}

func (m *Manager) definitionFor(item *content.Item) (*content.TypeDefinition, error) {
	if item == nil {
		return nil, errors.New("display: content item is required")
	}
	if m.definitions == nil {
		return nil, errors.New("display: definition source is required")
	}
	typeDef, ok := m.definitions.Type(item.ContentType)
	if !ok {
		return nil, fmt.Errorf("display: content type %q not defined", item.ContentType)
	}
	return typeDef, nil
}

// sortByPosition orders shapes by their dotted numeric position ("1", "2.5",
// "10.1"); shapes without a position keep their build order after positioned
// ones.
func sortByPosition(children []shapes.Shape) {
	sort.SliceStable(children, func(i, j int) bool {
		a := children[i].ShapeMetadata().Position
		b := children[j].ShapeMetadata().Position
		switch {
		case a == "" && b == "":
			return false
		case a == "":
			return false
		case b == "":
			return true
		}
		return comparePositions(a, b) < 0
	})
}

func comparePositions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		if aerr == nil && berr == nil {
			if an != bn {
				return an - bn
			}
			continue
		}
		if cmp := strings.Compare(as[i], bs[i]); cmp != 0 {
			return cmp
		}
	}
	return len(as) - len(bs)
}

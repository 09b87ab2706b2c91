package shapes

import (
	"reflect"
	"sync"
)

// fieldDescriptor records how to reach one exported field of a model type.
// Tables are built once per type and cached for the life of the process, so
// repeated copies and wrapper lookups avoid re-walking the type.
type fieldDescriptor struct {
	name  string
	index []int
}

var descriptorCache sync.Map // reflect.Type -> []fieldDescriptor

// descriptorsFor returns the exported-field table for a struct type,
// flattening anonymous embedded structs the way encoding/json does.
func descriptorsFor(t reflect.Type) []fieldDescriptor {
	if cached, ok := descriptorCache.Load(t); ok {
		return cached.([]fieldDescriptor)
	}
	descriptors := buildDescriptors(t)
	descriptorCache.Store(t, descriptors)
	return descriptors
}

// buildDescriptors walks the struct breadth first so a field on the outer
// struct shadows a same-named field promoted from an embedded struct,
// matching Go's shallowest-selector rule. Embedded struct types are visited
// once, which also terminates self-referential pointer embeds.
func buildDescriptors(root reflect.Type) []fieldDescriptor {
	if root.Kind() != reflect.Struct {
		return nil
	}
	type level struct {
		typ   reflect.Type
		index []int
	}
	var out []fieldDescriptor
	seen := map[string]struct{}{}
	visited := map[reflect.Type]struct{}{root: {}}
	queue := []level{{typ: root}}
	for len(queue) > 0 {
		var next []level
		for _, current := range queue {
			for i := 0; i < current.typ.NumField(); i++ {
				field := current.typ.Field(i)
				if !field.IsExported() {
					continue
				}
				index := append(append([]int(nil), current.index...), i)
				if field.Anonymous {
					embedded := field.Type
					if embedded.Kind() == reflect.Pointer {
						embedded = embedded.Elem()
					}
					if embedded.Kind() == reflect.Struct {
						if _, done := visited[embedded]; !done {
							visited[embedded] = struct{}{}
							next = append(next, level{typ: embedded, index: index})
						}
						continue
					}
				}
				if _, dup := seen[field.Name]; dup {
					continue
				}
				seen[field.Name] = struct{}{}
				out = append(out, fieldDescriptor{name: field.Name, index: index})
			}
		}
		queue = next
	}
	return out
}

// CopyProperties copies every exported field of model onto the shape's
// property bag by name. A nil model means there is nothing to copy. Maps keyed
// by string are copied entry-wise. Anything that is not a struct, a pointer to
// one, or a string-keyed map is ignored.
func CopyProperties(dst Shape, model any) {
	if dst == nil || model == nil {
		return
	}

	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Struct:
		for _, descriptor := range descriptorsFor(value.Type()) {
			// A nil embedded pointer makes the field unreachable; skip it.
			field, err := value.FieldByIndexErr(descriptor.index)
			if err != nil {
				continue
			}
			dst.Set(descriptor.name, field.Interface())
		}
	case reflect.Map:
		if value.Type().Key().Kind() != reflect.String {
			return
		}
		for _, key := range value.MapKeys() {
			dst.Set(key.String(), value.MapIndex(key).Interface())
		}
	}
}

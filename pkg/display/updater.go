package display

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// Updater binds submitted form values onto a model. Implementations record
// per-field binding problems instead of failing the whole bind, mirroring how
// validation feedback flows back into a redisplayed editor.
type Updater interface {
	// TryUpdateModel binds values whose keys start with prefix onto model,
	// which must be a pointer to a struct. The error reports misuse (nil or
	// non-pointer models); per-field conversion problems land in Errors.
	TryUpdateModel(ctx context.Context, model any, prefix string) error

	// Errors returns binding problems keyed by the full dotted field path.
	Errors() map[string][]string
}

// FormUpdater is the url.Values-backed Updater. Keys follow the dotted
// HTMLFieldPrefix convention the drivers compute, e.g. "Parent.BodyPart.Body".
type FormUpdater struct {
	values url.Values

	mu   sync.Mutex
	errs map[string][]string
}

// NewFormUpdater wraps submitted form values.
func NewFormUpdater(values url.Values) *FormUpdater {
	return &FormUpdater{values: values}
}

// TryUpdateModel implements Updater. Fields without a matching submitted key
// keep their current value.
func (u *FormUpdater) TryUpdateModel(ctx context.Context, model any, prefix string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if model == nil {
		return fmt.Errorf("display: update model is nil")
	}

	value := reflect.ValueOf(model)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return fmt.Errorf("display: update model must be a non-nil pointer, got %T", model)
	}
	target := value.Elem()
	if target.Kind() != reflect.Struct {
		return fmt.Errorf("display: update model must point to a struct, got %T", model)
	}

	structType := target.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		key := joinFieldPrefix(prefix, field.Name)
		raw, ok := u.lookup(key)
		if !ok {
			continue
		}
		if err := bindField(target.Field(i), raw); err != nil {
			u.addError(key, err.Error())
		}
	}
	return nil
}

// Errors returns accumulated binding problems keyed by field path.
func (u *FormUpdater) Errors() map[string][]string {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.errs) == 0 {
		return nil
	}
	out := make(map[string][]string, len(u.errs))
	for key, messages := range u.errs {
		out[key] = append([]string(nil), messages...)
	}
	return out
}

// HasErrors reports whether any binding problem was recorded.
func (u *FormUpdater) HasErrors() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.errs) > 0
}

func (u *FormUpdater) lookup(key string) ([]string, bool) {
	if u.values == nil {
		return nil, false
	}
	raw, ok := u.values[key]
	return raw, ok
}

func (u *FormUpdater) addError(key, message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.errs == nil {
		u.errs = make(map[string][]string)
	}
	u.errs[key] = append(u.errs[key], message)
}

func bindField(field reflect.Value, raw []string) error {
	if !field.CanSet() || len(raw) == 0 {
		return nil
	}
	first := raw[0]

	switch field.Kind() {
	case reflect.String:
		field.SetString(first)
	case reflect.Bool:
		parsed, err := parseBool(first)
		if err != nil {
			return err
		}
		field.SetBool(parsed)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parsed, err := strconv.ParseInt(strings.TrimSpace(first), 10, 64)
		if err != nil {
			return fmt.Errorf("not a valid integer: %q", first)
		}
		if field.OverflowInt(parsed) {
			return fmt.Errorf("integer out of range: %q", first)
		}
		field.SetInt(parsed)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		parsed, err := strconv.ParseUint(strings.TrimSpace(first), 10, 64)
		if err != nil {
			return fmt.Errorf("not a valid positive integer: %q", first)
		}
		if field.OverflowUint(parsed) {
			return fmt.Errorf("integer out of range: %q", first)
		}
		field.SetUint(parsed)
	case reflect.Float32, reflect.Float64:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
		if err != nil {
			return fmt.Errorf("not a valid number: %q", first)
		}
		field.SetFloat(parsed)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return nil
		}
		field.Set(reflect.ValueOf(append([]string(nil), raw...)))
	}
	return nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0", "":
		return false, nil
	default:
		return false, fmt.Errorf("not a valid boolean: %q", raw)
	}
}

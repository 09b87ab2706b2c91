package editor

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/goliatone/go-displaykit/pkg/content"
)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithDriver swaps the prompt driver, mainly for tests.
func WithDriver(driver PromptDriver) SessionOption {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// Session walks a content item's parts and prompts for every editable field,
// producing the same dotted-path form values a web editor would submit.
type Session struct {
	driver PromptDriver
}

// NewSession builds a session with the survey driver unless overridden.
func NewSession(options ...SessionOption) *Session {
	s := &Session{driver: NewPromptDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// CollectValues prompts for each part attached by the content type definition
// and returns the submission keyed by "<partName>.<FieldName>". Parts the item
// does not carry are skipped.
func (s *Session) CollectValues(ctx context.Context, item *content.Item, typeDef *content.TypeDefinition) (url.Values, error) {
	if item == nil {
		return nil, fmt.Errorf("editor: item is required")
	}
	if typeDef == nil {
		return nil, fmt.Errorf("editor: type definition is required")
	}
	if len(typeDef.Parts) == 0 {
		return nil, ErrNoParts
	}

	values := url.Values{}
	for _, def := range typeDef.Parts {
		part, ok := item.Get(def.Name)
		if !ok {
			continue
		}
		if err := s.driver.Info(ctx, fmt.Sprintf("Editing %s (%s)", def.Name, def.PartType)); err != nil {
			return nil, err
		}
		if err := s.collectPart(ctx, def, part, values); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func (s *Session) collectPart(ctx context.Context, def *content.TypePartDefinition, part content.Part, values url.Values) error {
	rv := reflect.ValueOf(part)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		value := rv.Field(i)
		path := def.Name + "." + field.Name

		answer, prompted, err := s.promptField(ctx, def, field.Name, value)
		if err != nil {
			return err
		}
		if prompted {
			values.Set(path, answer)
		}
	}
	return nil
}

// promptField picks the prompt style from the part definition settings first,
// then the field's kind. Unsupported kinds are silently skipped.
func (s *Session) promptField(ctx context.Context, def *content.TypePartDefinition, name string, value reflect.Value) (string, bool, error) {
	label := fmt.Sprintf("%s.%s", def.Name, name)

	if options := def.Setting("field."+name+".options", ""); options != "" {
		choices := splitOptions(options)
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      choices,
			DefaultIndex: indexOf(choices, fmt.Sprint(value.Interface())),
		})
		if err != nil {
			return "", false, err
		}
		if idx < 0 || idx >= len(choices) {
			return "", false, nil
		}
		return choices[idx], true, nil
	}

	switch value.Kind() {
	case reflect.Bool:
		answer, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: label,
			Default: value.Bool(),
		})
		if err != nil {
			return "", false, err
		}
		return strconv.FormatBool(answer), true, nil
	case reflect.String:
		cfg := def.Setting("field."+name+".editor", "")
		if cfg == "multiline" || cfg == "wysiwyg" {
			answer, err := s.driver.TextArea(ctx, TextAreaConfig{
				Message: label,
				Default: value.String(),
			})
			if err != nil {
				return "", false, err
			}
			return answer, true, nil
		}
		answer, err := s.driver.Input(ctx, InputConfig{
			Message: label,
			Default: value.String(),
		})
		if err != nil {
			return "", false, err
		}
		return answer, true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		answer, err := s.driver.Input(ctx, InputConfig{
			Message: label,
			Default: fmt.Sprint(value.Interface()),
		})
		if err != nil {
			return "", false, err
		}
		return answer, true, nil
	default:
		return "", false, nil
	}
}

func splitOptions(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package form

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Converter turns a raw input value into its typed form.
type Converter interface {
	Convert(value any) (any, error)
}

// ConverterFunc adapts an ordinary function to the Converter interface.
type ConverterFunc func(value any) (any, error)

func (f ConverterFunc) Convert(value any) (any, error) {
	return f(value)
}

// MissingValuer is implemented by converters that supply a value when their
// key is absent from the input mapping.
type MissingValuer interface {
	IfMissingValue() (any, bool)
}

// Base carries the behaviour shared by every converter in this package.
type Base struct {
	// NotEmpty rejects empty input with "Please enter a value".
	NotEmpty bool
	// Strip trims surrounding whitespace from string input before any check.
	Strip bool
	// IfEmpty replaces empty input when NotEmpty is false.
	IfEmpty any
	// Optional lets a schema use IfMissing when the key is absent
	// instead of reporting "Missing value".
	Optional  bool
	IfMissing any
	// Sanitize transforms run on string input after Strip.
	Sanitize []func(string) string
	// Messages overrides message templates by translation key. Overridden
	// messages are final and skip translation.
	Messages map[string]string
}

func (b Base) IfMissingValue() (any, bool) {
	return b.IfMissing, b.Optional
}

// normalize unwraps single-element string slices and []byte, then applies
// Strip and Sanitize to string input.
func (b Base) normalize(value any) any {
	switch v := value.(type) {
	case []string:
		if len(v) != 1 {
			return value
		}
		value = v[0]
	case []byte:
		value = string(v)
	}

	s, ok := value.(string)
	if !ok {
		return value
	}
	if b.Strip {
		s = strings.TrimSpace(s)
	}
	for _, fn := range b.Sanitize {
		if fn != nil {
			s = fn(s)
		}
	}
	return s
}

// empty handles empty input. done reports whether value was empty, in which
// case out and err are the converter's result.
func (b Base) empty(value any, emptyValue any, emptyKey string) (out any, done bool, err error) {
	if !IsEmpty(value) {
		return nil, false, nil
	}
	if b.NotEmpty {
		return nil, true, b.invalid(validator.NewError("", emptyKey, value, nil))
	}
	if b.IfEmpty != nil {
		return b.IfEmpty, true, nil
	}
	return emptyValue, true, nil
}

// check evaluates rules in order and reports the first failure.
func (b Base) check(rules ...validator.Rule) error {
	if ve := validator.First(rules...); ve != nil {
		return b.invalid(*ve)
	}
	return nil
}

// invalid wraps ve, applying any message override.
func (b Base) invalid(ve validator.ValidationError) *Invalid {
	if tmpl, ok := b.Messages[ve.TranslationKey]; ok {
		ve.Message = validator.Render(tmpl, ve.TranslationValues)
		ve.TranslationKey = ""
	}
	return &Invalid{ValidationError: ve}
}

func (b Base) badType(value any, expected string) *Invalid {
	return b.invalid(validator.NewError("", validator.KeyBadType, value, map[string]any{
		"expected": expected,
		"type":     fmt.Sprintf("%T", value),
	}))
}

// IsEmpty reports whether value counts as empty input: nil, an empty string,
// or an empty slice or map.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// stringify formats scalars as strings. ok is false for composite values.
func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case bool:
		return fmt.Sprint(v), true
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(value), true
	}
	return "", false
}

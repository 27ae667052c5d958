package form

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Chained validates the converted mapping as a whole, after every field has
// converted successfully.
type Chained interface {
	Validate(values map[string]any) error
}

// PartialValidator is a Chained validator that can also run when some fields
// failed, on the mapping of fields that did convert.
type PartialValidator interface {
	Chained
	ValidatePartial(values map[string]any) error
}

// ChainedFunc adapts a function to Chained. Plain errors are reported under
// FormErrorField.
type ChainedFunc func(values map[string]any) error

func (f ChainedFunc) Validate(values map[string]any) error {
	return f(values)
}

type fieldsMatch struct {
	names []string
}

// FieldsMatch requires every named field to equal the first one. Each
// mismatching field gets "Fields do not match". Absent fields compare as "".
func FieldsMatch(names ...string) PartialValidator {
	if len(names) < 2 {
		panic("FieldsMatch: at least two field names are required")
	}
	return fieldsMatch{names: names}
}

func (v fieldsMatch) Validate(values map[string]any) error {
	first := compareString(values[v.names[0]])

	var errs validator.ValidationErrors
	for _, name := range v.names[1:] {
		got := compareString(values[name])
		if ve := validator.First(validator.Equal(name, got, first)); ve != nil {
			ve.Value = values[name]
			errs.Add(*ve)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ValidatePartial only compares when every named field converted.
func (v fieldsMatch) ValidatePartial(values map[string]any) error {
	for _, name := range v.names {
		if _, ok := values[name]; !ok {
			return nil
		}
	}
	return v.Validate(values)
}

type requireIfPresent struct {
	required string
	present  string
}

// RequireIfPresent makes the required field mandatory once the present field
// holds a non-empty value, e.g. a password confirmation once a password is set.
func RequireIfPresent(required, present string) PartialValidator {
	return requireIfPresent{required: required, present: present}
}

func (v requireIfPresent) Validate(values map[string]any) error {
	if IsEmpty(values[v.present]) || !IsEmpty(values[v.required]) {
		return nil
	}
	return validator.ValidationErrors{
		validator.NewError(v.required, validator.KeyEmpty, values[v.required], nil),
	}
}

func (v requireIfPresent) ValidatePartial(values map[string]any) error {
	if _, ok := values[v.present]; !ok {
		return nil
	}
	return v.Validate(values)
}

func compareString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

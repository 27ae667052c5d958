package form

import (
	"fmt"
	"maps"
	"net/url"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// PreValidator transforms the whole raw input before fields are converted.
type PreValidator func(input map[string]any) (map[string]any, error)

type field struct {
	name      string
	converter Converter
}

// Schema applies named converters to a mapping of raw input.
// A Schema is itself a Converter, so schemas can be nested.
type Schema struct {
	fields        []field
	chained       []Chained
	pre           []PreValidator
	allowExtra    bool
	filterExtra   bool
	ignoreMissing bool
}

// SchemaOption configures a Schema.
type SchemaOption func(*Schema)

// NewSchema returns a schema configured by opts.
func NewSchema(opts ...SchemaOption) *Schema {
	s := &Schema{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithField adds a field. Declaring the same name again replaces its converter
// but keeps its original position.
func WithField(name string, c Converter) SchemaOption {
	if name == "" {
		panic("WithField: name cannot be empty")
	}
	if c == nil {
		panic("WithField: nil converter for " + name)
	}
	return func(s *Schema) {
		for i := range s.fields {
			if s.fields[i].name == name {
				s.fields[i].converter = c
				return
			}
		}
		s.fields = append(s.fields, field{name: name, converter: c})
	}
}

// WithChained adds validators that run on the converted mapping.
func WithChained(validators ...Chained) SchemaOption {
	return func(s *Schema) {
		for _, v := range validators {
			if v != nil {
				s.chained = append(s.chained, v)
			}
		}
	}
}

// WithPreValidators adds transforms that run on the raw mapping.
func WithPreValidators(fns ...PreValidator) SchemaOption {
	return func(s *Schema) {
		for _, fn := range fns {
			if fn != nil {
				s.pre = append(s.pre, fn)
			}
		}
	}
}

// AllowExtraFields accepts keys that have no declared field and copies them
// to the output unchanged.
func AllowExtraFields() SchemaOption {
	return func(s *Schema) { s.allowExtra = true }
}

// FilterExtraFields accepts keys that have no declared field and drops them.
func FilterExtraFields() SchemaOption {
	return func(s *Schema) {
		s.allowExtra = true
		s.filterExtra = true
	}
}

// IgnoreKeyMissing leaves absent fields out of the output instead of
// reporting "Missing value".
func IgnoreKeyMissing() SchemaOption {
	return func(s *Schema) { s.ignoreMissing = true }
}

// Extend returns a copy of s with more options applied.
func (s *Schema) Extend(opts ...SchemaOption) *Schema {
	cp := &Schema{
		fields:        slices.Clone(s.fields),
		chained:       slices.Clone(s.chained),
		pre:           slices.Clone(s.pre),
		allowExtra:    s.allowExtra,
		filterExtra:   s.filterExtra,
		ignoreMissing: s.ignoreMissing,
	}
	for _, opt := range opts {
		opt(cp)
	}
	return cp
}

// Fields returns the declared field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Convert implements Converter. It accepts map[string]any, map[string]string
// and url.Values.
func (s *Schema) Convert(value any) (any, error) {
	var input map[string]any
	switch v := value.(type) {
	case nil:
		input = map[string]any{}
	case map[string]any:
		input = v
	case map[string]string:
		input = make(map[string]any, len(v))
		for k, val := range v {
			input[k] = val
		}
	case url.Values:
		input = FlattenValues(v)
	default:
		return nil, newInvalid(validator.KeyBadType, value, map[string]any{
			"expected": "mapping",
			"type":     fmt.Sprintf("%T", value),
		})
	}
	return s.ConvertMap(input)
}

// ConvertValues converts submitted form values; see FlattenValues.
func (s *Schema) ConvertValues(values url.Values) (map[string]any, error) {
	return s.ConvertMap(FlattenValues(values))
}

// ConvertMap converts every declared field of input. It returns the converted
// mapping, or validator.ValidationErrors listing each failing field.
func (s *Schema) ConvertMap(input map[string]any) (map[string]any, error) {
	if len(s.pre) > 0 {
		input = maps.Clone(input)
	}
	var err error
	for _, pre := range s.pre {
		if input, err = pre(input); err != nil {
			return nil, toValidationErrors(FormErrorField, err)
		}
	}

	var errs validator.ValidationErrors
	out := make(map[string]any, len(input))

	declared := make(map[string]bool, len(s.fields))
	for _, f := range s.fields {
		declared[f.name] = true
	}

	extra := make([]string, 0)
	for key := range input {
		if !declared[key] {
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)

	for _, key := range extra {
		switch {
		case !s.allowExtra:
			errs = append(errs, validator.NewError(key, validator.KeyNotExpected, input[key], map[string]any{"name": key}))
		case !s.filterExtra:
			out[key] = input[key]
		}
	}

	for _, f := range s.fields {
		raw, present := input[f.name]
		if !present {
			if mv, ok := f.converter.(MissingValuer); ok {
				if v, use := mv.IfMissingValue(); use {
					out[f.name] = v
					continue
				}
			}
			if s.ignoreMissing {
				continue
			}
			errs = append(errs, validator.NewError(f.name, validator.KeyMissing, nil, nil))
			continue
		}

		v, cerr := f.converter.Convert(raw)
		if cerr != nil {
			errs = append(errs, toValidationErrors(f.name, cerr)...)
			continue
		}
		out[f.name] = v
	}

	if len(errs) > 0 {
		for _, c := range s.chained {
			pv, ok := c.(PartialValidator)
			if !ok {
				continue
			}
			if cerr := pv.ValidatePartial(out); cerr != nil {
				errs = appendUnique(errs, toValidationErrors(FormErrorField, cerr))
			}
		}
		return nil, errs
	}

	for _, c := range s.chained {
		if cerr := c.Validate(out); cerr != nil {
			errs = append(errs, toValidationErrors(FormErrorField, cerr)...)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// appendUnique skips errors for fields that already failed conversion.
func appendUnique(errs, more validator.ValidationErrors) validator.ValidationErrors {
	for _, e := range more {
		if !errs.Has(e.Field) {
			errs = append(errs, e)
		}
	}
	return errs
}

// FlattenValues turns url.Values into a raw input mapping. Keys with a single
// value map to that string; keys with several values keep the []string.
func FlattenValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) == 1 {
			out[k] = v[0]
			continue
		}
		out[k] = slices.Clone(v)
	}
	return out
}

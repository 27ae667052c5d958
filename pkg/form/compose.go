package form

import (
	"reflect"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

type pipe []Converter

// Pipe runs converters in order, feeding each output into the next one.
// It stops at the first failure. A missing key is handled by the first converter.
func Pipe(converters ...Converter) Converter {
	return pipe(converters)
}

func (p pipe) Convert(value any) (any, error) {
	var err error
	for _, c := range p {
		if value, err = c.Convert(value); err != nil {
			return nil, err
		}
	}
	return value, nil
}

func (p pipe) IfMissingValue() (any, bool) {
	if len(p) == 0 {
		return nil, false
	}
	if mv, ok := p[0].(MissingValuer); ok {
		return mv.IfMissingValue()
	}
	return nil, false
}

// Check builds a converter that passes its input through unchanged when fn
// returns nil. A plain error becomes an *Invalid carrying its text; an
// *Invalid is kept as is.
func Check(fn func(value any) error) Converter {
	return ConverterFunc(func(value any) (any, error) {
		err := fn(value)
		if err == nil {
			return value, nil
		}
		if inv, ok := AsInvalid(err); ok {
			return nil, inv
		}
		return nil, &Invalid{ValidationError: validator.ValidationError{
			Message:           err.Error(),
			Value:             value,
			TranslationValues: map[string]any{},
		}}
	})
}

// Rule builds a converter from a validator rule constructor. The rule is
// built for each input and its error is reported when the check fails.
func Rule[T any](build func(value T) validator.Rule) Converter {
	return ConverterFunc(func(value any) (any, error) {
		v, ok := value.(T)
		if !ok {
			return nil, Base{}.badType(value, typeName[T]())
		}
		if ve := validator.First(build(v)); ve != nil {
			return nil, &Invalid{ValidationError: *ve}
		}
		return v, nil
	})
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

package form

import (
	"errors"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

var (
	// ErrInvalid is matched by errors.Is against every *Invalid.
	ErrInvalid = errors.New("invalid value")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrMissingContentType   = errors.New("missing content type")
	ErrBind                 = errors.New("failed to bind form values")
	ErrUnknownForm          = errors.New("unknown form")
	ErrInvalidDefinition    = errors.New("invalid form definition")
)

// FormErrorField is the field name used for errors that do not belong to a
// single input field, e.g. those returned by a ChainedFunc.
const FormErrorField = "_form"

// Invalid is returned by a Converter that rejects its input.
type Invalid struct {
	validator.ValidationError
}

func (e *Invalid) Error() string {
	return e.Message
}

func (e *Invalid) Unwrap() error {
	return ErrInvalid
}

// newInvalid builds an *Invalid for key with the default message template.
func newInvalid(key string, value any, params map[string]any) *Invalid {
	return &Invalid{ValidationError: validator.NewError("", key, value, params)}
}

// AsInvalid reports whether err is, or wraps, an *Invalid.
func AsInvalid(err error) (*Invalid, bool) {
	var inv *Invalid
	if errors.As(err, &inv) {
		return inv, true
	}
	return nil, false
}

// toValidationErrors attributes err to field. Errors that already name a
// field keep it; under a nested schema field the name is prefixed with it.
func toValidationErrors(field string, err error) validator.ValidationErrors {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		out := make(validator.ValidationErrors, 0, len(verrs))
		for _, ve := range verrs {
			name := ve.Field
			switch {
			case field == "" || field == FormErrorField:
				if name == "" {
					name = field
				}
			case name == "" || name == FormErrorField:
				name = field
			default:
				name = field + "." + name
			}
			out = append(out, ve.WithField(name))
		}
		return out
	}

	if inv, ok := AsInvalid(err); ok {
		return validator.ValidationErrors{inv.ValidationError.WithField(field)}
	}

	return validator.ValidationErrors{{
		Field:             field,
		Message:           err.Error(),
		TranslationValues: map[string]any{"field": field},
	}}
}

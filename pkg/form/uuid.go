package form

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// UUID parses canonical UUID strings into uuid.UUID. Empty input converts to nil.
type UUID struct {
	Base
}

func (c UUID) Convert(value any) (any, error) {
	value = c.normalize(value)
	if out, done, err := c.empty(value, nil, validator.KeyEmpty); done {
		return out, err
	}

	switch v := value.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		if err := c.check(validator.ValidUUID("", v)); err != nil {
			return nil, err
		}
		return uuid.MustParse(v), nil
	}
	return nil, c.badType(value, "string")
}

package form

import (
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// OneOf accepts only values listed in Values and returns the listed spelling.
// Empty input converts to nil.
type OneOf struct {
	Base
	Values     []string
	IgnoreCase bool
}

func (c OneOf) Convert(value any) (any, error) {
	value = c.normalize(value)
	if out, done, err := c.empty(value, nil, validator.KeyEmpty); done {
		return out, err
	}

	s, ok := stringify(value)
	if !ok {
		return nil, c.badType(value, "string")
	}

	rule := validator.InList("", s, c.Values)
	if c.IgnoreCase {
		rule = validator.InListCaseInsensitive("", s, c.Values)
	}
	if err := c.check(rule); err != nil {
		return nil, err
	}

	for _, v := range c.Values {
		if v == s || (c.IgnoreCase && strings.EqualFold(v, s)) {
			return v, nil
		}
	}
	return s, nil
}

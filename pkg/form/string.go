package form

import (
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// String accepts text and optionally bounds its length in runes.
// Numbers and bools are formatted; composite values are rejected.
// Empty input converts to "".
type String struct {
	Base
	Min int
	Max int
}

func (c String) Convert(value any) (any, error) {
	value = c.normalize(value)
	if out, done, err := c.empty(value, "", validator.KeyEmpty); done {
		return out, err
	}

	s, ok := stringify(value)
	if !ok {
		return nil, c.badType(value, "string")
	}

	var rules []validator.Rule
	if c.Min > 0 {
		rules = append(rules, validator.MinLen("", s, c.Min))
	}
	if c.Max > 0 {
		rules = append(rules, validator.MaxLen("", s, c.Max))
	}
	if err := c.check(rules...); err != nil {
		return nil, err
	}
	return s, nil
}

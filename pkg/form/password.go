package form

import (
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const (
	DefaultPasswordMinLength     = 8
	DefaultPasswordMinNonLetters = 1
)

// SecurePassword is a custom string converter that enforces a minimum length
// and a minimum number of non-letter characters. Zero limits select the
// defaults. Empty input converts to "" unless NotEmpty is set.
type SecurePassword struct {
	Base
	MinLength     int
	MinNonLetters int
	RejectCommon  bool
}

func (c SecurePassword) Convert(value any) (any, error) {
	value = c.normalize(value)
	if out, done, err := c.empty(value, "", validator.KeyEmpty); done {
		return out, err
	}

	s, ok := value.(string)
	if !ok {
		return nil, c.badType(value, "string")
	}

	minLength := c.MinLength
	if minLength <= 0 {
		minLength = DefaultPasswordMinLength
	}
	minNonLetters := c.MinNonLetters
	if minNonLetters <= 0 {
		minNonLetters = DefaultPasswordMinNonLetters
	}

	rules := []validator.Rule{
		validator.MinPasswordLength("", s, minLength),
		validator.MinNonLetters("", s, minNonLetters),
	}
	if c.RejectCommon {
		rules = append(rules, validator.NotCommonPassword("", s))
	}
	if err := c.check(rules...); err != nil {
		return nil, err
	}
	return s, nil
}

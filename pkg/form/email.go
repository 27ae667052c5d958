package form

import (
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Email accepts addresses with exactly one "@", a valid username and a valid
// domain. Input is always trimmed and the domain is lower-cased.
// Empty input converts to "".
type Email struct {
	Base
}

func (c Email) Convert(value any) (any, error) {
	value = c.normalize(value)
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}
	if out, done, err := c.empty(value, "", validator.KeyEmailEmpty); done {
		return out, err
	}

	s, ok := value.(string)
	if !ok {
		return nil, c.badType(value, "string")
	}

	if err := c.check(
		validator.EmailSingleAt("", s),
		validator.EmailUsername("", s),
		validator.EmailDomain("", s),
	); err != nil {
		return nil, err
	}

	username, domain, _ := validator.SplitEmail(s)
	return username + "@" + strings.ToLower(domain), nil
}

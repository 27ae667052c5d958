package form

import (
	"strings"
	"time"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// DefaultDateLayouts are tried in order when Date.Layouts is empty.
var DefaultDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

var layoutHint = strings.NewReplacer("2006", "YYYY", "01", "MM", "02", "DD")

// Date accepts time.Time values or strings in one of Layouts and checks the
// optional range. Earliest and Latest are inclusive; zero values disable them.
// Empty input converts to nil.
type Date struct {
	Base
	Earliest     time.Time
	Latest       time.Time
	AfterNow     bool
	TodayOrAfter bool
	Layouts      []string
	// Location is used for strings without a zone; defaults to UTC.
	Location *time.Location
	// Now replaces time.Now in AfterNow and TodayOrAfter checks.
	Now func() time.Time
}

func (c Date) Convert(value any) (any, error) {
	value = c.normalize(value)
	if out, done, err := c.empty(value, nil, validator.KeyEmpty); done {
		return out, err
	}

	t, ok := c.parse(value)
	if !ok {
		return nil, c.invalid(validator.NewError("", validator.KeyBadDate, value, map[string]any{
			"format": layoutHint.Replace(c.layouts()[0]),
		}))
	}

	var rules []validator.Rule
	if !c.Earliest.IsZero() {
		rules = append(rules, validator.DateNotBefore("", t, c.Earliest))
	}
	if !c.Latest.IsZero() {
		rules = append(rules, validator.DateNotAfter("", t, c.Latest))
	}
	if c.AfterNow {
		rules = append(rules, validator.FutureDate("", t, c.now()))
	}
	if c.TodayOrAfter {
		rules = append(rules, validator.TodayOrLater("", t, c.now()))
	}
	if err := c.check(rules...); err != nil {
		return nil, err
	}
	return t, nil
}

func (c Date) parse(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		loc := c.Location
		if loc == nil {
			loc = time.UTC
		}
		s := strings.TrimSpace(v)
		for _, layout := range c.layouts() {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func (c Date) layouts() []string {
	if len(c.Layouts) > 0 {
		return c.Layouts
	}
	return DefaultDateLayouts
}

func (c Date) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

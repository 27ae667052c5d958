package form

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Int parses base-10 integers. Min and Max are inclusive bounds when set.
// Empty input converts to nil.
type Int struct {
	Base
	Min *int
	Max *int
}

func (c Int) Convert(value any) (any, error) {
	value = c.normalize(value)
	if out, done, err := c.empty(value, nil, validator.KeyEmpty); done {
		return out, err
	}

	n, ok := toInt(value)
	if !ok {
		return nil, c.invalid(validator.NewError("", validator.KeyInteger, value, nil))
	}

	var rules []validator.Rule
	if c.Min != nil {
		rules = append(rules, validator.MinNum("", n, *c.Min))
	}
	if c.Max != nil {
		rules = append(rules, validator.MaxNum("", n, *c.Max))
	}
	if err := c.check(rules...); err != nil {
		return nil, err
	}
	return n, nil
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	case json.Number:
		return toInt(string(v))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || f >= math.MaxInt || f < math.MinInt {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// Ptr returns a pointer to v, for optional bounds such as Int.Min.
func Ptr[T any](v T) *T {
	return &v
}

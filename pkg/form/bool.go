package form

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

var falseStrings = map[string]bool{
	"0":     true,
	"false": true,
	"f":     true,
	"off":   true,
	"no":    true,
	"n":     true,
}

// Bool coerces input to a bool. Absent, empty and falsy input ("0", "false",
// "off", "no", 0, false) is false; anything else is true. Bool only fails
// when NotEmpty is set and the input is empty.
type Bool struct {
	Base
}

func (c Bool) Convert(value any) (any, error) {
	value = c.normalize(value)
	if c.NotEmpty || c.IfEmpty != nil {
		if out, done, err := c.empty(value, false, validator.KeyEmpty); done {
			return out, err
		}
	}
	return toBool(value), nil
}

// IfMissingValue makes unchecked checkboxes, which browsers omit, read as false.
func (c Bool) IfMissingValue() (any, bool) {
	if c.IfMissing != nil {
		return c.IfMissing, true
	}
	return false, true
}

func toBool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s != "" && !falseStrings[s]
	case json.Number:
		return toBool(string(v))
	case []string:
		// Browsers post a hidden "false" before the checkbox value; the last one wins.
		if len(v) == 0 {
			return false
		}
		return toBool(v[len(v)-1])
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}
	return !IsEmpty(value)
}

package validator

import (
	"fmt"
	"slices"
	"strings"
)

func InList[T comparable](field string, value T, allowedValues []T) Rule {
	items := make([]string, len(allowedValues))
	for i, v := range allowedValues {
		items[i] = fmt.Sprint(v)
	}

	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: NewError(field, KeyNotInList, value, map[string]any{
			"items": strings.Join(items, "; "),
			"value": value,
		}),
	}
}

// InListCaseInsensitive compares strings with Unicode case folding.
func InListCaseInsensitive(field, value string, allowedValues []string) Rule {
	rule := InList(field, value, allowedValues)
	rule.Check = func() bool {
		return slices.ContainsFunc(allowedValues, func(v string) bool {
			return strings.EqualFold(v, value)
		})
	}
	return rule
}

func OneOf[T comparable](field string, value T, options []T) Rule {
	return InList(field, value, options)
}

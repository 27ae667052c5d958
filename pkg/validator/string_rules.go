package validator

import (
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: NewError(field, KeyEmpty, value, nil),
	}
}

// MinLenString counts runes, not bytes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: NewError(field, KeyTooShort, value, map[string]any{"min": min}),
	}
}

// MaxLenString passes values up to and including max runes. The message keeps
// the traditional "less than" wording.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: NewError(field, KeyTooLong, value, map[string]any{"max": max}),
	}
}

func LenString(field, value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) == exact
		},
		Error: NewError(field, KeyExactLength, value, map[string]any{"length": exact}),
	}
}

// Convenience aliases for common string validation cases

func Required(field, value string) Rule {
	return RequiredString(field, value)
}

func MinLen(field, value string, min int) Rule {
	return MinLenString(field, value, min)
}

func MaxLen(field, value string, max int) Rule {
	return MaxLenString(field, value, max)
}

func Len(field, value string, exact int) Rule {
	return LenString(field, value, exact)
}

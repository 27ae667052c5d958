package validator

// RequiredComparable validates that a comparable value is not its zero value.
func RequiredComparable[T comparable](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value != zero
		},
		Error: NewError(field, KeyEmpty, value, nil),
	}
}

// Equal validates that value equals other, e.g. a password confirmation.
func Equal[T comparable](field string, value T, other T) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: NewError(field, KeyFieldsMatch, value, nil),
	}
}

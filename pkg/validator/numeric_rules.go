package validator

func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: NewError(field, KeyTooLow, value, map[string]any{"min": min}),
	}
}

func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: NewError(field, KeyTooHigh, value, map[string]any{"max": max}),
	}
}

// RangeNum reports the lower bound message when value is below min and the
// upper bound message otherwise.
func RangeNum[T Numeric](field string, value T, min T, max T) Rule {
	if value < min {
		return MinNum(field, value, min)
	}
	return MaxNum(field, value, max)
}

// Convenience aliases for common numeric validation cases

func Min[T Numeric](field string, value T, min T) Rule {
	return MinNum(field, value, min)
}

func Max[T Numeric](field string, value T, max T) Rule {
	return MaxNum(field, value, max)
}

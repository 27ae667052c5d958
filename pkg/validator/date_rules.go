package validator

import (
	"time"
)

// DateLayout is used to render boundary dates in messages,
// e.g. "Wednesday, 22 April 2009".
const DateLayout = "Monday, 02 January 2006"

// DateNotBefore passes when value is on or after earliest.
func DateNotBefore(field string, value time.Time, earliest time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.Before(earliest)
		},
		Error: NewError(field, KeyDateAfter, value, map[string]any{
			"date": earliest.Format(DateLayout),
		}),
	}
}

// DateNotAfter passes when value is on or before latest.
func DateNotAfter(field string, value time.Time, latest time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.After(latest)
		},
		Error: NewError(field, KeyDateBefore, value, map[string]any{
			"date": latest.Format(DateLayout),
		}),
	}
}

func DateBetween(field string, value time.Time, start time.Time, end time.Time) Rule {
	return Rule{
		Check: func() bool {
			return (value.Equal(start) || value.After(start)) && (value.Equal(end) || value.Before(end))
		},
		Error: NewError(field, KeyDateBetween, value, map[string]any{
			"start": start.Format(DateLayout),
			"end":   end.Format(DateLayout),
		}),
	}
}

// FutureDate passes when value is strictly after now.
func FutureDate(field string, value time.Time, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.After(now)
		},
		Error: NewError(field, KeyDateFuture, value, nil),
	}
}

// TodayOrLater compares calendar days in value's location, ignoring the time of day.
func TodayOrLater(field string, value time.Time, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			local := now.In(value.Location())
			today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, value.Location())
			return !value.Before(today)
		},
		Error: NewError(field, KeyDateToday, value, nil),
	}
}

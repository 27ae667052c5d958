package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Frequently compromised passwords, compared in lower case.
var commonPasswords = map[string]bool{
	"password":    true,
	"password1":   true,
	"password12":  true,
	"password123": true,
	"password!":   true,
	"123456":      true,
	"12345678":    true,
	"123456789":   true,
	"1234567890":  true,
	"qwerty":      true,
	"qwerty123":   true,
	"qwertyuiop":  true,
	"abc123":      true,
	"abcd1234":    true,
	"admin":       true,
	"admin123":    true,
	"letmein":     true,
	"letmein1":    true,
	"welcome":     true,
	"welcome1":    true,
	"monkey":      true,
	"dragon":      true,
	"sunshine":    true,
	"iloveyou":    true,
	"princess":    true,
	"football":    true,
	"baseball":    true,
	"trustno1":    true,
	"master":      true,
	"secret":      true,
	"superman":    true,
	"1q2w3e4r":    true,
	"1qaz2wsx":    true,
	"zaq12wsx":    true,
	"passw0rd":    true,
	"p@ssw0rd":    true,
	"p@ssword":    true,
	"changeme":    true,
	"changeme1":   true,
	"11111111":    true,
	"00000000":    true,
}

// MinPasswordLength counts runes, not bytes.
func MinPasswordLength(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: NewError(field, KeyPasswordTooShort, value, map[string]any{"min": min}),
	}
}

// MinNonLetters requires at least count runes that are not letters
// (digits, punctuation, symbols or spaces).
func MinNonLetters(field, value string, count int) Rule {
	key := KeyPasswordNonLetter
	if count != 1 {
		key = KeyPasswordNonLetters
	}

	return Rule{
		Check: func() bool {
			return CountNonLetters(value) >= count
		},
		Error: NewError(field, key, value, map[string]any{"count": count}),
	}
}

func NotCommonPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !commonPasswords[strings.ToLower(value)]
		},
		Error: NewError(field, KeyPasswordCommon, value, nil),
	}
}

// CountNonLetters returns how many runes of s are not Unicode letters.
func CountNonLetters(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

package validator

import (
	"regexp"
	"strings"
)

var (
	emailUsernameRegex = regexp.MustCompile(`^[\w!#$%&'*+\-/=?^` + "`" + `{|}~.]+$`)

	// One or more dot separated labels. A bare host such as "localhost" is accepted.
	emailDomainRegex = regexp.MustCompile(`(?i)^[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)*$`)
)

// SplitEmail splits an address around its single "@".
// ok is false when the address has no "@" or more than one.
func SplitEmail(value string) (username, domain string, ok bool) {
	if strings.Count(value, "@") != 1 {
		return "", "", false
	}
	username, domain, _ = strings.Cut(value, "@")
	return username, domain, true
}

func EmailSingleAt(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, _, ok := SplitEmail(value)
			return ok
		},
		Error: NewError(field, KeyEmailNoAt, value, nil),
	}
}

func EmailUsername(field, value string) Rule {
	username, _, _ := SplitEmail(value)
	return Rule{
		Check: func() bool {
			return emailUsernameRegex.MatchString(username)
		},
		Error: NewError(field, KeyEmailUsername, value, map[string]any{"username": username}),
	}
}

func EmailDomain(field, value string) Rule {
	_, domain, _ := SplitEmail(value)
	return Rule{
		Check: func() bool {
			return emailDomainRegex.MatchString(domain)
		},
		Error: NewError(field, KeyEmailDomain, value, map[string]any{"domain": domain}),
	}
}

// ValidEmail combines EmailSingleAt, EmailUsername and EmailDomain into a
// single rule with a generic message.
func ValidEmail(field, value string) Rule {
	parts := []Rule{
		EmailSingleAt(field, value),
		EmailUsername(field, value),
		EmailDomain(field, value),
	}
	return Rule{
		Check: func() bool {
			return First(parts...) == nil
		},
		Error: NewError(field, KeyEmail, value, nil),
	}
}

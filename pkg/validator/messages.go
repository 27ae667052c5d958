package validator

import (
	"fmt"
	"regexp"
)

// Translation keys used by the rules in this package.
const (
	KeyEmpty              = "validation.empty"
	KeyMissing            = "validation.missing"
	KeyBadType            = "validation.bad_type"
	KeyTooShort           = "validation.too_short"
	KeyTooLong            = "validation.too_long"
	KeyExactLength        = "validation.exact_length"
	KeyInteger            = "validation.integer"
	KeyTooLow             = "validation.too_low"
	KeyTooHigh            = "validation.too_high"
	KeyBadDate            = "validation.bad_date"
	KeyDateAfter          = "validation.date_after"
	KeyDateBefore         = "validation.date_before"
	KeyDateBetween        = "validation.date_between"
	KeyDateFuture         = "validation.date_future"
	KeyDateToday          = "validation.date_today_or_later"
	KeyEmail              = "validation.email"
	KeyEmailEmpty         = "validation.email_empty"
	KeyEmailNoAt          = "validation.email_no_at"
	KeyEmailUsername      = "validation.email_username"
	KeyEmailDomain        = "validation.email_domain"
	KeyNotInList          = "validation.not_in_list"
	KeyUUID               = "validation.uuid"
	KeyPasswordTooShort   = "validation.password_too_short"
	KeyPasswordNonLetter  = "validation.password_non_letter"
	KeyPasswordNonLetters = "validation.password_non_letters"
	KeyPasswordCommon     = "validation.password_common"
	KeyFieldsMatch        = "validation.fields_match"
	KeyNotExpected        = "validation.not_expected"
)

// DefaultMessages holds the English template for every translation key.
var DefaultMessages = map[string]string{
	KeyEmpty:              "Please enter a value",
	KeyMissing:            "Missing value",
	KeyBadType:            "The input must be a %{expected} (not %{type})",
	KeyTooShort:           "Enter a value %{min} characters long or more",
	KeyTooLong:            "Enter a value less than %{max} characters long",
	KeyExactLength:        "Enter a value exactly %{length} characters long",
	KeyInteger:            "Please enter an integer value",
	KeyTooLow:             "Please enter a number that is %{min} or greater",
	KeyTooHigh:            "Please enter a number that is %{max} or smaller",
	KeyBadDate:            "Please enter a date in the format %{format}",
	KeyDateAfter:          "Date must be after %{date}",
	KeyDateBefore:         "Date must be before %{date}",
	KeyDateBetween:        "Date must be between %{start} and %{end}",
	KeyDateFuture:         "The date must be sometime in the future",
	KeyDateToday:          "The date must be today or later",
	KeyEmail:              "Please enter a valid email address",
	KeyEmailEmpty:         "Please enter an email address",
	KeyEmailNoAt:          "An email address must contain a single @",
	KeyEmailUsername:      "The username portion of the email address is invalid (the portion before the @: %{username})",
	KeyEmailDomain:        "The domain portion of the email address is invalid (the portion after the @: %{domain})",
	KeyNotInList:          "Value must be one of: %{items} (not %{value})",
	KeyUUID:               "Please enter a valid UUID",
	KeyPasswordTooShort:   "Your password must be at least %{min} characters",
	KeyPasswordNonLetter:  "Your password requires at least %{count} non-alpha character",
	KeyPasswordNonLetters: "Your password requires at least %{count} non-alpha characters",
	KeyPasswordCommon:     "Your password is too common",
	KeyFieldsMatch:        "Fields do not match",
	KeyNotExpected:        "The input field %{name} was not expected.",
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Render substitutes %{name} placeholders in tmpl with values.
// Unknown placeholders are left untouched.
func Render(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := values[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}

// NewError builds a ValidationError for key, rendering its default template.
// The field name is always added to the translation values.
func NewError(field, key string, value any, values map[string]any) ValidationError {
	params := make(map[string]any, len(values)+1)
	for k, v := range values {
		params[k] = v
	}
	params["field"] = field

	return ValidationError{
		Field:             field,
		Message:           Render(DefaultMessages[key], params),
		Value:             value,
		TranslationKey:    key,
		TranslationValues: params,
	}
}

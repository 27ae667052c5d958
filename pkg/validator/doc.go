// Package validator provides the rule layer behind formkit: small, stateless
// checks over already-typed values that report failures with human-readable,
// translation-friendly error metadata.
//
// A Rule bundles a boolean Check function with the ValidationError to report
// when the check fails. Rules are evaluated with Apply, which aggregates every
// failure into a ValidationErrors slice that satisfies the error interface.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `date_rules.go`, `email_rules.go`, ...). Every exported rule constructor
// just returns a Rule value; the package holds no mutable global state and is
// safe for concurrent use.
//
// Core building blocks:
//   - Rule              – Check func plus error metadata
//   - ValidationError   – a single failure with field, offending value and i18n key
//   - ValidationErrors  – slice type that implements the error interface
//   - DefaultMessages   – English templates keyed by translation key
//   - Render            – substitutes %{name} placeholders in a template
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("first_name", firstName),
//	    validator.MaxLen("username", username, 10),
//	    validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// # Messages
//
// Messages follow the wording users of classic form libraries expect, e.g.
// "Enter a value less than 10 characters long" or "Date must be after
// Wednesday, 22 April 2009". Each ValidationError also carries a
// TranslationKey and TranslationValues so the message can be re-rendered in
// another language with ValidationError.Translate.
package validator

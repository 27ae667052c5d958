// Package form converts raw form input into typed values.
//
// A Converter takes one raw value (usually a string posted by a browser) and
// returns either the coerced value or an *Invalid error carrying a
// human-readable message and the offending value. Converters are plain
// structs configured with fields, so they can be declared inline:
//
//	form.Bool{}.Convert("")                              // false, nil
//	form.String{Max: 10}.Convert("Your eyes")            // "Your eyes", nil
//	form.String{Max: 10}.Convert("Follow where you lead") // Enter a value less than 10 characters long
//	form.Email{}.Convert("karlmonetate")                 // An email address must contain a single @
//
// Every converter embeds Base, which controls what happens with empty input
// (NotEmpty, IfEmpty), with missing keys (Optional, IfMissing), and lets
// callers strip, sanitize or reword messages.
//
// # Schemas
//
// A Schema applies named converters to a mapping of raw input and returns the
// fully converted mapping, or a validator.ValidationErrors value listing every
// failing field. Chained validators such as FieldsMatch run after the fields
// and can compare several converted values:
//
//	passwordForm := form.NewSchema(
//	    form.WithField("new_password", form.SecurePassword{}),
//	    form.WithField("new_password_again", form.String{}),
//	    form.WithChained(form.FieldsMatch("new_password", "new_password_again")),
//	)
//	values, err := passwordForm.ConvertMap(input)
//
// Schemas can also read straight from an *http.Request (ConvertRequest),
// decode their output into a struct (Bind), and be declared in YAML
// (LoadDefinitions).
//
// # Custom validators
//
// Any type with a Convert(any) (any, error) method is a Converter. Embedding
// Base gives custom converters the same empty-value handling as the built-in
// ones; see SecurePassword for an example built from validator rules.
package form

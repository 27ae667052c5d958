// Package sanitizer provides string transforms that clean raw form input
// before it is validated.
//
// Every transform has the signature func(string) string so transforms can be
// chained with Apply and Compose, attached to a form converter, or looked up by
// name when forms are declared in YAML:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.StripHTML,
//	    sanitizer.NormalizeWhitespace,
//	)
//	name := clean("  <b>Karl</b>   Shouler ")
//	// name == "Karl Shouler"
//
// StripHTML uses a bluemonday strict policy; ToTitle and NormalizeUnicode are
// backed by golang.org/x/text. All other helpers use only the standard library
// and are safe for concurrent use.
package sanitizer

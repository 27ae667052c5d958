package sanitizer

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSanitizer is returned by Lookup for names that are not registered.
var ErrUnknownSanitizer = errors.New("unknown sanitizer")

var registry = map[string]func(string) string{
	"trim":                 Trim,
	"lower":                ToLower,
	"upper":                ToUpper,
	"title":                ToTitle,
	"normalize_whitespace": NormalizeWhitespace,
	"single_line":          SingleLine,
	"remove_control_chars": RemoveControlChars,
	"strip_html":           StripHTML,
	"normalize_unicode":    NormalizeUnicode,
	"digits":               KeepDigits,
}

// Lookup resolves a transform by the name used in form definitions.
func Lookup(name string) (func(string) string, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
	}
	return fn, nil
}

// LookupAll resolves every name and composes them in order.
func LookupAll(names ...string) (func(string) string, error) {
	fns := make([]func(string) string, 0, len(names))
	for _, name := range names {
		fn, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return Compose(fns...), nil
}

// Names lists the registered transform names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

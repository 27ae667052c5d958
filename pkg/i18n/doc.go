// Package i18n translates validation messages.
//
// A Translator loads nested message maps per language from a
// TranslationAdapter (in memory, a single file, a directory of YAML/JSON
// files, or the built-in locales served by DefaultAdapter) and renders
// %{name} placeholders:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.MultiAdapter{
//	    i18n.DefaultAdapter(),
//	    i18n.NewDirectoryAdapter("translations"),
//	})
//	msgs := tr.TranslateErrors("de", err) // map[field][]message
//
// Keys are dot paths into the nested maps, so the validator key
// "validation.too_long" reads de → validation → too_long. A language that is
// not loaded falls back to its base language and then to the default
// language. Missing keys leave the built-in English message in place.
//
// Language negotiation uses golang.org/x/text/language. Middleware picks
// the language from the "lang" query parameter, the "lang" cookie or the
// Accept-Language header and stores it with SetLocale.
package i18n

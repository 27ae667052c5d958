package i18n

import (
	"net/http"
)

// Middleware stores the language chosen by extr in the request context, or
// defaultLang when extr finds none. A nil extr uses DefaultLangExtractor
// without a supported-language list, which accepts no language.
func Middleware(extr LangExtractor, defaultLang string) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = defaultLang
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

// Middleware negotiates among the languages t has loaded and
// falls back to its default language.
func (t *Translator) Middleware() func(http.Handler) http.Handler {
	return Middleware(DefaultLangExtractor(t.SupportedLanguages()...), t.DefaultLanguage())
}

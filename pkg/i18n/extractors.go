package i18n

import (
	"net/http"
)

// maxLangCodeLength follows the RFC 5646 recommendation.
const maxLangCodeLength = 35

// LangExtractor returns the language for r, or "" when it cannot tell.
type LangExtractor func(r *http.Request) string

// FromQuery reads the language from the named query parameter.
func FromQuery(m *Matcher, name string) LangExtractor {
	strict := m.strict()
	return func(r *http.Request) string {
		return strict.MatchString(r.URL.Query().Get(name))
	}
}

// FromCookie reads the language from the named cookie.
func FromCookie(m *Matcher, name string) LangExtractor {
	strict := m.strict()
	return func(r *http.Request) string {
		c, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return strict.MatchString(c.Value)
	}
}

// FromAcceptLanguage negotiates the Accept-Language header.
func FromAcceptLanguage(m *Matcher) LangExtractor {
	strict := m.strict()
	return func(r *http.Request) string {
		return strict.MatchHeader(r.Header.Get("Accept-Language"))
	}
}

// Chain tries extractors in order and returns the first non-empty result.
func Chain(extractors ...LangExtractor) LangExtractor {
	return func(r *http.Request) string {
		for _, ex := range extractors {
			if ex == nil {
				continue
			}
			if lang := ex(r); lang != "" {
				return lang
			}
		}
		return ""
	}
}

// DefaultLangExtractor checks the "lang" query parameter, then the "lang"
// cookie, then Accept-Language.
func DefaultLangExtractor(supported ...string) LangExtractor {
	m := NewMatcher(supported, "")
	return Chain(FromQuery(m, "lang"), FromCookie(m, "lang"), FromAcceptLanguage(m))
}

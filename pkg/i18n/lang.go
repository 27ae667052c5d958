package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing better can be negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header before parsing.
const maxAcceptLanguageLength = 4096

// Matcher negotiates a client's language preferences against a fixed list of
// supported language codes.
type Matcher struct {
	supported []string
	tags      []language.Tag
	matcher   language.Matcher
	fallback  string
}

// NewMatcher builds a Matcher for supported. Codes that do not parse as BCP 47
// tags are skipped. fallback is returned when nothing matches.
func NewMatcher(supported []string, fallback string) *Matcher {
	m := &Matcher{fallback: fallback}
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		m.supported = append(m.supported, strings.ToLower(code))
		m.tags = append(m.tags, tag)
	}
	if len(m.tags) > 0 {
		m.matcher = language.NewMatcher(m.tags)
	}
	return m
}

// strict returns a copy that reports no match as "", so extractors in a
// Chain can fall through.
func (m *Matcher) strict() *Matcher {
	cp := *m
	cp.fallback = ""
	return &cp
}

// Match returns the supported code closest to the given tags, in preference
// order, or the fallback.
func (m *Matcher) Match(tags ...language.Tag) string {
	if m.matcher == nil || len(tags) == 0 {
		return m.fallback
	}
	_, idx, conf := m.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(m.supported) {
		return m.fallback
	}
	return m.supported[idx]
}

// MatchString matches a single language code such as a query parameter.
func (m *Matcher) MatchString(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > maxLangCodeLength {
		return m.fallback
	}
	tag, err := language.Parse(code)
	if err != nil {
		return m.fallback
	}
	return m.Match(tag)
}

// MatchHeader matches an Accept-Language header value, honoring q-values.
func (m *Matcher) MatchHeader(header string) string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return m.fallback
	}
	return m.Match(tags...)
}

// ParseAcceptLanguage negotiates header against supportedLangs, returning
// defaultLang when no supported language is acceptable.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	return NewMatcher(supportedLangs, defaultLang).MatchHeader(header)
}

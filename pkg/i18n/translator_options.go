package i18n

import (
	"log/slog"
	"strings"
)

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one, and its
// base language, are not loaded.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang = strings.ToLower(strings.TrimSpace(lang)); lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T and N return the key for missing
// translations. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the translator's logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing key.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.missingLogMode = enabled
	}
}

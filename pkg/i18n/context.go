package i18n

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type localeContextKey struct{}

// SetLocale stores the language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the language stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// LoggerExtractor returns a ContextExtractor for the logger that adds the
// negotiated language.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if locale, ok := ctx.Value(localeContextKey{}).(string); ok && locale != "" {
			return logger.Lang(locale), true
		}
		return slog.Attr{}, false
	}
}

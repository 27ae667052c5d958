// Package requestid tags every request with an ID that is echoed in the
// response header and attached to log records.
//
// An incoming X-Request-ID is kept when it is at most 128 characters of
// letters, digits, "-" and "_"; otherwise a time-ordered UUIDv7 is generated.
package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type contextKey struct{}

func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// FromContext returns the request ID stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(contextKey{}).(string)
	return requestID
}

// LoggerExtractor returns a ContextExtractor for the logger.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}

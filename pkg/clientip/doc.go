// Package clientip resolves the address of the client behind a request.
//
// GetIP checks the proxy headers in Headers order (CF-Connecting-IP,
// X-Forwarded-For, X-Real-IP) and falls back to RemoteAddr. Only values that
// parse as an IP address are used; the result is normalized by net.ParseIP.
// Only trust these headers when the service runs behind a proxy that sets
// them.
//
// Middleware stores the resolved address in the request context, where
// rate limit keys and log records pick it up:
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip

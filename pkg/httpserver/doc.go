// Package httpserver runs the formkit HTTP API with graceful shutdown.
//
// Server listens on the configured address, serves the handler and blocks in
// Run until the context is cancelled or SIGINT/SIGTERM arrives. Shutdown then
// waits up to the shutdown timeout for in-flight requests.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Config carries caarlos0/env tags so it can be embedded in a larger
// configuration struct and loaded with pkg/config.
//
// HealthCheckHandler serves a JSON report of named dependency checks.
package httpserver

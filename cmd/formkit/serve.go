package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/formserver"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the forms over HTTP",
		Long: `Starts an HTTP server exposing GET /forms, POST /forms/{name} and GET /health.
The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.HTTP.Addr = addr
			}
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	reg, err := a.cfg.LoadRegistry()
	if err != nil {
		return err
	}
	tr, err := a.cfg.LoadTranslator(ctx, a.log)
	if err != nil {
		return err
	}

	a.log.InfoContext(ctx, "forms loaded",
		logger.Component("formkit"),
		logger.Fields(reg.Names()),
		logger.Lang(tr.DefaultLanguage()),
	)

	opts := []formserver.Option{
		formserver.WithTranslator(tr),
		formserver.WithLogger(a.log),
	}
	if a.cfg.RateLimitEnabled {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		bucket, err := ratelimiter.NewBucket(store, a.cfg.RateLimit)
		if err != nil {
			return err
		}
		opts = append(opts, formserver.WithRateLimiter(bucket))
	}

	srv := formserver.New(reg, opts...)
	return httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(a.log)).Run(ctx, srv.Router())
}

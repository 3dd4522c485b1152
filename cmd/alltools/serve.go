package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ZaguanLabs/alltools/internal/telemetry"
	"github.com/ZaguanLabs/alltools/server"
)

func newServeCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the localized site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			texts, err := opts.texts(catalog)
			if err != nil {
				return err
			}
			if missing := texts.Missing(catalog); len(missing) > 0 {
				for lang, keys := range missing {
					opts.logger.Warn("missing texts fall back to the default language",
						zap.String("language", string(lang)),
						zap.Int("keys", len(keys)),
					)
				}
			}

			c, release, err := opts.openCache(ctx)
			if err != nil {
				return err
			}
			defer release()

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			srv := server.New(catalog, texts,
				server.WithBaseURL(opts.cfg.BaseURL),
				server.WithCache(c),
				server.WithLogger(opts.logger),
				server.WithMetrics(telemetry.NewMetrics(registry)),
				server.WithGatherer(registry),
			)
			return srv.Run(ctx, opts.cfg.Addr)
		},
	}
}

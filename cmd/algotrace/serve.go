package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	algohttp "algotrace/internal/http"
	"algotrace/pkg/metrics"
	"algotrace/pkg/registry"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := initConfig(opts.ConfigPath, os.LookupEnv)
			if err != nil {
				return err
			}
			initLogger(&cfg, os.Stdout)

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return serve(ctx, algohttp.NewServer(cfg, registry.Default[float64](), metrics.NewMemory()))
		},
	}
}

func serve(ctx context.Context, server *algohttp.Server) error {
	if err := server.Start(); err != nil {
		return err
	}
	slog.Info("algotrace is running, press Ctrl+C to stop", "url", server.URL)

	<-ctx.Done()

	if err := server.Stop(); err != nil {
		slog.Error("Error stopping server", "error", err)
		return err
	}
	slog.Info("algotrace stopped")
	return nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"earlyaccess/internal/api"
	"earlyaccess/internal/api/handler"
	"earlyaccess/internal/config"
	"earlyaccess/internal/signup"
	"earlyaccess/pkg/logger"
	"earlyaccess/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(
	ctx context.Context,
	cfg *config.Config,
	deps api.Deps,
	mp metric.MeterProvider,
) func(ctx context.Context) {
	opts := api.NewOptions(cfg)
	opts.MeterProvider = mp
	server, err := api.NewServer(ctx, deps, opts)
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// serveCommand starts the placeholder backend the submit command posts to
// during local development.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the placeholder early-access endpoint",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			defer func() {
				if err := mp.Shutdown(context.Background()); err != nil {
					logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
				}
			}()
			signups, err := metrics.NewSignups(metrics.Meter(mp))
			if err != nil {
				logger.Fatal(ctx, "could not create signup metrics", zap.Error(err))
			}

			strg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: handler.Deps{Signup: signup.New(strg, signups)},
			}, mp)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}

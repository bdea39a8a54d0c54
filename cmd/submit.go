package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"earlyaccess/internal/config"
	"earlyaccess/internal/terminal"
	"earlyaccess/pkg/capture"
	"earlyaccess/pkg/logger"
	"earlyaccess/pkg/metrics"
	"earlyaccess/pkg/motion"
	"earlyaccess/pkg/transport/httpjson"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const tooltipHelp = "Early access: leave your email and we'll invite you as soon as a spot opens. " +
	"Type ? to close this note, esc to dismiss it."

// serveSubmitMetrics exposes reg on addr until the returned func is called.
func serveSubmitMetrics(ctx context.Context, cfg *config.Config, addr string, reg prometheus.Gatherer) func() {
	server := &http.Server{
		Addr:              addr,
		Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}
	go func() {
		logger.Info(ctx, "serving submit metrics", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "could not serve submit metrics", zap.Error(err))
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "could not stop metrics server", zap.Error(err))
		}
	}
}

// submitCommand runs the capture form on the terminal. With --email it submits
// once and fails unless the attempt succeeded; otherwise every line read from
// stdin is a submission.
func submitCommand(cfg *config.Config) *cobra.Command {
	var email, metricsAddr string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submits early-access emails to the configured endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			policy, err := capture.ParsePolicy(cfg.Capture.OnTransportFailure)
			if err != nil {
				logger.Fatal(ctx, "invalid capture configuration", zap.Error(err))
			}

			reg := prometheus.NewRegistry()
			mp, err := metrics.NewMeterProvider(reg)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			defer func() {
				if err := mp.Shutdown(context.Background()); err != nil {
					logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
				}
			}()
			if metricsAddr != "" {
				stopMetrics := serveSubmitMetrics(ctx, cfg, metricsAddr, reg)
				defer stopMetrics()
			}

			driver := motion.Select(!cfg.Capture.ReducedMotion, motion.LogDriver{})

			widget := terminal.New(cmd.OutOrStdout())
			form, err := capture.New(capture.Deps{
				Input:      widget,
				Affordance: widget,
				Messages:   widget,
				Transport:  httpjson.New(nil, cfg.Capture.Endpoint),
				Driver:     driver,
			}, capture.Options{
				Timeout:            cfg.Capture.Timeout,
				OnTransportFailure: policy,
				Meter:              metrics.Meter(mp),
			})
			if err != nil {
				logger.Fatal(ctx, "could not create capture form", zap.Error(err))
			}

			logger.Debug(ctx, "capture form ready",
				zap.String("endpoint", cfg.Capture.Endpoint),
				zap.Duration("timeout", cfg.Capture.Timeout),
				zap.String("policy", string(policy)))

			if email != "" {
				widget.Type(email)
				form.OnInput(ctx)
				outcome, err := form.SubmitInput(ctx)
				if err != nil {
					return err
				}
				if outcome.State != capture.Succeeded {
					return fmt.Errorf("submission ended %s: %w", outcome.State, outcome.Err)
				}

				return nil
			}

			intro := motion.IntroTimeline()
			session := &terminal.Session{
				Widget:  widget,
				Form:    form,
				Driver:  driver,
				Intro:   &intro,
				Prompt:  "email> ",
				Tooltip: motion.NewTooltip(motion.TooltipTarget, driver),
				Help:    tooltipHelp,
			}
			if _, err := session.Run(ctx, cmd.InOrStdin()); err != nil && ctx.Err() == nil {
				return err
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Submit this address once and exit")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve submission metrics on this address while running")

	return cmd
}

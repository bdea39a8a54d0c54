// Package api configures and exposes the HTTP server of the placeholder
// backend: the generated v1 API, its spec and docs, metrics, pprof and
// middleware.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"earlyaccess/internal/api/handler"
	"earlyaccess/internal/api/specs/v1specs"
	"earlyaccess/internal/config"
	"earlyaccess/pkg/logger"
	"earlyaccess/pkg/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
)

// v1Spec contains the embedded OpenAPI specification of the v1 API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	// EarlyAccessPath is the route the capture widget posts to.
	EarlyAccessPath = "/api/early-access"
	// SpecPath serves the embedded OpenAPI document.
	SpecPath = "/specs/v1.yaml"
	// DocsPath serves the Swagger UI for SpecPath.
	DocsPath = "/docs/"

	// maxBodyBytes bounds request bodies of the v1 API.
	maxBodyBytes = 4 << 10
)

// Options holds configuration for the HTTP server.
// Zero durations keep the net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is applied to every request via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigin is the CORS origin allowed to call the API.
	AllowedOrigin string
	// Gatherer backs the metrics endpoint. Nil means prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// MeterProvider receives the request metrics of the v1 API. Nil means
	// the global otel provider.
	MeterProvider metric.MeterProvider
}

// NewOptions maps the HTTP and CORS settings of cfg to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigin:     cfg.CORS.AllowedOrigin,
	}
}

// Deps are the services behind the routes.
type Deps struct {
	handler.Deps
}

// NewHandler returns the routed and wrapped handler served by NewServer:
// - POST EarlyAccessPath and GET /healthz via the generated v1 server
// - the embedded OpenAPI document at SpecPath and Swagger UI under DocsPath
// - Prometheus metrics at MetricsPath
// - pprof under /debug/pprof/
// wrapped with CORS, access logging and the request timeout.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	mux.Handle("GET "+metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	mux.HandleFunc("GET "+SpecPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle(DocsPath, v5emb.New(
		"Early Access Service",
		SpecPath,
		DocsPath,
	))

	// v1 api
	h := handler.New(deps.Deps)
	v1Srv, err := v1specs.NewServer(h,
		v1specs.WithMeterProvider(opts.MeterProvider),
		v1specs.WithErrorHandler(h.HandleError))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}
	v1Handler := http.MaxBytesHandler(v1Srv, maxBodyBytes)
	mux.Handle("/api/", v1Handler)
	mux.Handle("/healthz", v1Handler)

	mux.Handle(middleware.PprofPrefix, middleware.PprofMux())

	var next http.Handler = mux
	if opts.RequestTimeout > 0 {
		next = http.TimeoutHandler(next, opts.RequestTimeout, `{"code":"UNAVAILABLE","message":"request timed out"}`)
	}
	next = middleware.WithCORS(middleware.CORSOptions{AllowedOrigin: opts.AllowedOrigin})(next)

	return middleware.WithLogger(next), nil
}

// NewServer returns an *http.Server serving NewHandler. Requests inherit the
// values of ctx (its logger) but not its cancellation; server errors are
// written to that logger.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	h, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           h,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          logger.StdLogger(ctx, slog.LevelError),
		BaseContext: func(_ net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}, nil
}

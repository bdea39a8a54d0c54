// Package metrics wires OpenTelemetry instruments to a Prometheus registry and
// defines the instruments recorded by the capture controller and the backend.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MeterName is the instrumentation scope of every instrument in this module.
const MeterName = "earlyaccess"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// NewMeterProvider returns a meter provider whose instruments are exported
// through reg. Pass prometheus.DefaultRegisterer to expose them on promhttp.Handler.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Meter returns the module meter from mp, or a no-op meter when mp is nil.
func Meter(mp metric.MeterProvider) metric.Meter {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}

	return mp.Meter(MeterName)
}

// Capture holds the instruments recorded by the submission controller.
type Capture struct {
	submissions metric.Int64Counter
	duration    metric.Float64Histogram
}

// NewCapture creates the controller instruments on meter.
func NewCapture(meter metric.Meter) (*Capture, error) {
	submissions, err := meter.Int64Counter("earlyaccess.submissions",
		metric.WithDescription("Submission attempts by final outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create submissions counter: %w", err)
	}
	duration, err := meter.Float64Histogram("earlyaccess.transport.duration",
		metric.WithDescription("Time spent waiting for the submission endpoint"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create transport duration histogram: %w", err)
	}

	return &Capture{submissions: submissions, duration: duration}, nil
}

// RecordOutcome counts one finished attempt. masked marks a transport failure
// reported to the user as a success.
func (c *Capture) RecordOutcome(ctx context.Context, outcome string, masked bool) {
	c.submissions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.Bool("masked", masked)))
}

// RecordTransport observes one transport call.
func (c *Capture) RecordTransport(ctx context.Context, took time.Duration, failed bool) {
	c.duration.Record(ctx, took.Seconds(), metric.WithAttributes(attribute.Bool("failed", failed)))
}

// Signups holds the instruments recorded by the placeholder backend.
type Signups struct {
	registrations metric.Int64Counter
}

// NewSignups creates the backend instruments on meter.
func NewSignups(meter metric.Meter) (*Signups, error) {
	registrations, err := meter.Int64Counter("earlyaccess.signups",
		metric.WithDescription("Signup registrations by result"))
	if err != nil {
		return nil, fmt.Errorf("could not create signups counter: %w", err)
	}

	return &Signups{registrations: registrations}, nil
}

// Record counts one registration with the given result (created, existing,
// rejected, failed). A nil *Signups records nothing.
func (s *Signups) Record(ctx context.Context, result string) {
	if s == nil {
		return
	}
	s.registrations.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// Package telemetry provides OpenTelemetry metrics and tracing for story
// narration.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultInstrumentationName is the meter and tracer name used by default.
const DefaultInstrumentationName = "github.com/felixgeelhaar/story-go"

// MetricsProvider provides access to metrics instruments.
type MetricsProvider struct {
	meter metric.Meter

	// Counters
	transitions metric.Int64Counter
	refused     metric.Int64Counter
	narrations  metric.Int64Counter

	// Histograms
	certainty         metric.Int64Histogram
	questionRounds    metric.Int64Histogram
	narrationDuration metric.Float64Histogram

	initErr error
}

// MetricsConfig configures the metrics provider.
type MetricsConfig struct {
	// MeterName is the name of the meter (default: DefaultInstrumentationName).
	MeterName string
	// MeterVersion is the version of the meter.
	MeterVersion string
	// MeterProvider overrides the global meter provider.
	MeterProvider metric.MeterProvider
	// Attributes are default attributes to attach to all metrics.
	Attributes []attribute.KeyValue
}

// DefaultMetricsConfig returns a default metrics configuration.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		MeterName:    DefaultInstrumentationName,
		MeterVersion: "1.0.0",
	}
}

// NewMetricsProvider creates a new metrics provider.
func NewMetricsProvider(config MetricsConfig) *MetricsProvider {
	if config.MeterName == "" {
		config.MeterName = DefaultInstrumentationName
	}

	provider := config.MeterProvider
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(
		config.MeterName,
		metric.WithInstrumentationVersion(config.MeterVersion),
		metric.WithInstrumentationAttributes(config.Attributes...),
	)

	mp := &MetricsProvider{meter: meter}
	mp.initErr = mp.initInstruments()
	return mp
}

func (mp *MetricsProvider) initInstruments() error {
	var err error

	mp.transitions, err = mp.meter.Int64Counter(
		"story.transitions",
		metric.WithDescription("Number of phase transitions fired"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return err
	}

	mp.refused, err = mp.meter.Int64Counter(
		"story.events.refused",
		metric.WithDescription("Number of events refused by the phase machine"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return err
	}

	mp.narrations, err = mp.meter.Int64Counter(
		"story.narrations",
		metric.WithDescription("Number of completed narrations"),
		metric.WithUnit("{narration}"),
	)
	if err != nil {
		return err
	}

	mp.certainty, err = mp.meter.Int64Histogram(
		"story.experiment.certainty",
		metric.WithDescription("Experiment certainty after each questioning round"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	mp.questionRounds, err = mp.meter.Int64Histogram(
		"story.question.rounds",
		metric.WithDescription("Questioning rounds needed before a decision"),
		metric.WithUnit("{round}"),
	)
	if err != nil {
		return err
	}

	mp.narrationDuration, err = mp.meter.Float64Histogram(
		"story.narration.duration",
		metric.WithDescription("Duration of story narrations"),
		metric.WithUnit("ms"),
	)
	return err
}

// Error returns any initialization error.
func (mp *MetricsProvider) Error() error {
	return mp.initErr
}

// RecordTransition records a fired event.
func (mp *MetricsProvider) RecordTransition(ctx context.Context, event, fromPhase, toPhase string) {
	if mp.transitions == nil {
		return
	}
	mp.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("story.event", event),
		attribute.String("phase.from", fromPhase),
		attribute.String("phase.to", toPhase),
	))
}

// RecordRefused records an event the phase machine did not permit.
func (mp *MetricsProvider) RecordRefused(ctx context.Context, event, phase string) {
	if mp.refused == nil {
		return
	}
	mp.refused.Add(ctx, 1, metric.WithAttributes(
		attribute.String("story.event", event),
		attribute.String("story.phase", phase),
	))
}

// RecordCertainty records the certainty observed after a questioning round.
func (mp *MetricsProvider) RecordCertainty(ctx context.Context, certainty int) {
	if mp.certainty == nil {
		return
	}
	mp.certainty.Record(ctx, int64(certainty))
}

// RecordNarration records a finished narration.
func (mp *MetricsProvider) RecordNarration(ctx context.Context, outcome string, questions int, duration time.Duration) {
	if mp.narrations == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("story.outcome", outcome))

	mp.narrations.Add(ctx, 1, attrs)
	mp.questionRounds.Record(ctx, int64(questions), attrs)
	mp.narrationDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
}

// NoopMetricsProvider is a no-op metrics provider for testing or when metrics are disabled.
type NoopMetricsProvider struct{}

// RecordTransition is a no-op.
func (n *NoopMetricsProvider) RecordTransition(ctx context.Context, event, fromPhase, toPhase string) {
}

// RecordRefused is a no-op.
func (n *NoopMetricsProvider) RecordRefused(ctx context.Context, event, phase string) {
}

// RecordCertainty is a no-op.
func (n *NoopMetricsProvider) RecordCertainty(ctx context.Context, certainty int) {
}

// RecordNarration is a no-op.
func (n *NoopMetricsProvider) RecordNarration(ctx context.Context, outcome string, questions int, duration time.Duration) {
}

// Metrics defines the interface for metrics recording.
type Metrics interface {
	RecordTransition(ctx context.Context, event, fromPhase, toPhase string)
	RecordRefused(ctx context.Context, event, phase string)
	RecordCertainty(ctx context.Context, certainty int)
	RecordNarration(ctx context.Context, outcome string, questions int, duration time.Duration)
}

// Ensure implementations satisfy the interface.
var (
	_ Metrics = (*MetricsProvider)(nil)
	_ Metrics = (*NoopMetricsProvider)(nil)
)

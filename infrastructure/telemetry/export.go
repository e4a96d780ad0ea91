package telemetry

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// ExportConfig configures the metrics export pipeline.
type ExportConfig struct {
	// ServiceName is the name of the service for metrics.
	ServiceName string

	// ServiceVersion is the version of the service.
	ServiceVersion string

	// Output receives stdout-exported metrics (default: os.Stderr).
	Output io.Writer

	// PrettyPrint indents exported metrics.
	PrettyPrint bool

	// Reader replaces the stdout periodic reader, mainly for tests.
	Reader sdkmetric.Reader
}

// MeterProvider wraps the SDK meter provider.
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
}

// NewMeterProvider creates a meter provider. With the default stdout reader
// collected metrics are written once more on Shutdown.
func NewMeterProvider(cfg ExportConfig) (*MeterProvider, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "story-go"
	}

	reader := cfg.Reader
	if reader == nil {
		out := cfg.Output
		if out == nil {
			out = os.Stderr
		}
		opts := []stdoutmetric.Option{stdoutmetric.WithWriter(out)}
		if cfg.PrettyPrint {
			opts = append(opts, stdoutmetric.WithPrettyPrint())
		}
		exp, err := stdoutmetric.New(opts...)
		if err != nil {
			return nil, err
		}
		reader = sdkmetric.NewPeriodicReader(exp)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(newResource(cfg.ServiceName, cfg.ServiceVersion)),
	)
	return &MeterProvider{provider: mp}, nil
}

// Provider returns the meter provider for MetricsConfig.MeterProvider.
func (mp *MeterProvider) Provider() metric.MeterProvider {
	return mp.provider
}

// Metrics creates story instruments on this provider.
func (mp *MeterProvider) Metrics() *MetricsProvider {
	cfg := DefaultMetricsConfig()
	cfg.MeterProvider = mp.provider
	return NewMetricsProvider(cfg)
}

// Shutdown flushes pending metrics and stops the provider.
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	return mp.provider.Shutdown(ctx)
}

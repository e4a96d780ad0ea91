// Package main demonstrates observability integration with OpenTelemetry.
// Shows tracing, metrics, and structured logging around a narration.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/felixgeelhaar/story-go/application"
	"github.com/felixgeelhaar/story-go/infrastructure/logging"
	"github.com/felixgeelhaar/story-go/infrastructure/telemetry"
)

func main() {
	fmt.Println("=== Observability Example ===")
	fmt.Println()

	ctx := context.Background()

	// Debug logs show every fired event
	logging.Init(logging.Config{Level: "debug", Format: "json", Output: os.Stderr})

	// Spans go to stderr as JSON
	tp, err := telemetry.NewTracerProvider(telemetry.TracingConfig{
		ServiceName: "observability-example",
		Output:      os.Stderr,
	})
	if err != nil {
		log.Fatalf("failed to create tracer provider: %v", err)
	}
	defer func() { _ = tp.Shutdown(ctx) }()

	// Metrics are collected on demand
	reader := metric.NewManualReader()
	cfg := telemetry.DefaultMetricsConfig()
	cfg.MeterProvider = metric.NewMeterProvider(metric.WithReader(reader))
	metrics := telemetry.NewMetricsProvider(cfg)
	if err := metrics.Error(); err != nil {
		log.Fatalf("failed to create metrics: %v", err)
	}

	narrator, err := application.NewNarrator(
		application.WithSeed(7),
		application.WithTracer(tp.Tracer()),
		application.WithMetrics(metrics),
	)
	if err != nil {
		log.Fatalf("failed to create narrator: %v", err)
	}

	result, err := narrator.Narrate(ctx)
	if err != nil {
		log.Fatalf("narration failed: %v", err)
	}

	fmt.Println(result.Title)
	fmt.Println(result.FormattedProse)
	fmt.Println()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		log.Fatalf("failed to collect metrics: %v", err)
	}
	fmt.Println("Metrics recorded:")
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			fmt.Printf("  - %s\n", m.Name)
		}
	}
}

package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestNewMeterProvider_Reader(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp, err := NewMeterProvider(ExportConfig{Reader: reader})
	if err != nil {
		t.Fatalf("NewMeterProvider() error = %v", err)
	}
	defer mp.Shutdown(context.Background())

	metrics := mp.Metrics()
	if metrics.Error() != nil {
		t.Fatalf("failed to create instruments: %v", metrics.Error())
	}
	metrics.RecordTransition(context.Background(), "finish_planning", "planning", "ready")

	m, ok := collect(t, reader)["story.transitions"]
	if !ok {
		t.Fatal("story.transitions metric not found")
	}
	if got := sumInt64(t, m); got != 1 {
		t.Errorf("expected 1 transition, got %d", got)
	}
}

func TestNewMeterProvider_StdoutFlushesOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	mp, err := NewMeterProvider(ExportConfig{ServiceName: "story-test", Output: &buf})
	if err != nil {
		t.Fatalf("NewMeterProvider() error = %v", err)
	}

	metrics := mp.Metrics()
	ctx := context.Background()
	metrics.RecordTransition(ctx, "finish_planning", "planning", "ready")
	metrics.RecordNarration(ctx, "accepted", 1, time.Millisecond)

	if err := mp.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	for _, name := range []string{"story.transitions", "story.narrations"} {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("stdout exporter output missing %s: %q", name, buf.String())
		}
	}
}

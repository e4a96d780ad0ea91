package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewTracerProvider_Exporter(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp, err := NewTracerProvider(TracingConfig{Exporter: exporter})
	if err != nil {
		t.Fatalf("NewTracerProvider() error = %v", err)
	}

	ctx, parent := tp.Tracer().Start(context.Background(), "story.narrate")
	_, child := tp.Tracer().Start(ctx, "story.fire")
	child.End()
	parent.End()

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Name != "story.fire" || spans[1].Name != "story.narrate" {
		t.Errorf("unexpected span order: %s, %s", spans[0].Name, spans[1].Name)
	}
	if spans[0].Parent.SpanID() != spans[1].SpanContext.SpanID() {
		t.Error("child span should reference the narration span")
	}

	if err := tp.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNewTracerProvider_Stdout(t *testing.T) {
	var buf bytes.Buffer
	tp, err := NewTracerProvider(TracingConfig{ServiceName: "story-test", Output: &buf})
	if err != nil {
		t.Fatalf("NewTracerProvider() error = %v", err)
	}

	_, span := tp.Tracer().Start(context.Background(), "story.narrate")
	span.End()

	if err := tp.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if !strings.Contains(buf.String(), "story.narrate") {
		t.Errorf("stdout exporter output missing span name: %q", buf.String())
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "story.narrate")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("noop tracer should produce invalid span contexts")
	}
}

package application

import (
	"github.com/felixgeelhaar/bolt/v3"
	"go.opentelemetry.io/otel/trace"

	"github.com/felixgeelhaar/story-go/domain/story"
	"github.com/felixgeelhaar/story-go/infrastructure/telemetry"
)

// Option configures the narrator.
type Option func(*NarratorConfig)

// WithSource sets the random source. It takes precedence over WithSeed.
func WithSource(src story.Source) Option {
	return func(c *NarratorConfig) {
		c.Source = src
	}
}

// WithSeed seeds a deterministic source. Zero draws a fresh seed.
func WithSeed(seed int64) Option {
	return func(c *NarratorConfig) {
		c.Seed = seed
	}
}

// WithMaxQuestions bounds the questioning loop.
func WithMaxQuestions(n int) Option {
	return func(c *NarratorConfig) {
		c.MaxQuestions = n
	}
}

// WithVerdict sets how a certain experiment is judged.
func WithVerdict(v Verdict) Option {
	return func(c *NarratorConfig) {
		c.Verdict = v
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m telemetry.Metrics) Option {
	return func(c *NarratorConfig) {
		c.Metrics = m
	}
}

// WithTracer sets the tracer used for narration spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *NarratorConfig) {
		c.Tracer = t
	}
}

// WithLogger sets the logger for narration events. Without it the default
// logger is used.
func WithLogger(l *bolt.Logger) Option {
	return func(c *NarratorConfig) {
		c.Logger = l
	}
}

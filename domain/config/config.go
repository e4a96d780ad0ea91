// Package config provides domain models for story configuration.
package config

import "time"

// Defaults applied when a field is left empty.
const (
	DefaultMaxQuestions = 1000
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

// StoryConfig represents the complete configuration of a narration.
type StoryConfig struct {
	// Name is a human-readable name for this configuration.
	Name string `json:"name" yaml:"name"`
	// Version is the configuration schema version.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Story contains narration settings.
	Story StorySettings `json:"story" yaml:"story"`
	// Logging contains logger settings.
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
	// Telemetry contains metrics and tracing settings.
	Telemetry TelemetryConfig `json:"telemetry,omitempty" yaml:"telemetry,omitempty"`
}

// StorySettings controls how a story is narrated.
type StorySettings struct {
	// Seed seeds the random source. Zero draws a fresh seed.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	// MaxQuestions bounds the questioning loop.
	MaxQuestions int `json:"max_questions,omitempty" yaml:"max_questions,omitempty"`
	// Timeout bounds the whole narration (zero means none).
	Timeout Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	// Format is json or console.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// TelemetryConfig toggles OpenTelemetry instrumentation.
type TelemetryConfig struct {
	Metrics bool `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Tracing bool `json:"tracing,omitempty" yaml:"tracing,omitempty"`
}

// Default returns a configuration with every default filled in.
func Default() *StoryConfig {
	cfg := &StoryConfig{Name: "story"}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields with their defaults.
func (c *StoryConfig) ApplyDefaults() {
	if c.Story.MaxQuestions == 0 {
		c.Story.MaxQuestions = DefaultMaxQuestions
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}

// Duration is a time.Duration that supports JSON/YAML string representation.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/felixgeelhaar/story-go/domain/config"
)

// envOverrides lists the settings that may be overridden from the environment.
type envOverrides struct {
	Seed         int64  `env:"STORY_SEED"`
	MaxQuestions int    `env:"STORY_MAX_QUESTIONS"`
	LogLevel     string `env:"STORY_LOG_LEVEL"`
	LogFormat    string `env:"STORY_LOG_FORMAT"`
}

// ApplyEnv overlays STORY_* environment variables onto cfg. Unset variables
// leave the configured values untouched.
func ApplyEnv(cfg *config.StoryConfig) error {
	o := envOverrides{
		Seed:         cfg.Story.Seed,
		MaxQuestions: cfg.Story.MaxQuestions,
		LogLevel:     cfg.Logging.Level,
		LogFormat:    cfg.Logging.Format,
	}
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("%w: %v", config.ErrEnvOverrideFailed, err)
	}

	cfg.Story.Seed = o.Seed
	cfg.Story.MaxQuestions = o.MaxQuestions
	cfg.Logging.Level = o.LogLevel
	cfg.Logging.Format = o.LogFormat

	if errs := config.NewValidator().Validate(cfg); errs.HasErrors() {
		return fmt.Errorf("%w: %v", config.ErrValidationFailed, errs)
	}
	return nil
}

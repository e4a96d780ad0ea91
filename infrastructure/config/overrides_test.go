package config

import (
	"errors"
	"testing"

	domainconfig "github.com/felixgeelhaar/story-go/domain/config"
)

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("STORY_SEED", "1234")
	t.Setenv("STORY_MAX_QUESTIONS", "12")
	t.Setenv("STORY_LOG_LEVEL", "warn")

	cfg := domainconfig.Default()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Story.Seed != 1234 {
		t.Errorf("Seed = %d, want 1234", cfg.Story.Seed)
	}
	if cfg.Story.MaxQuestions != 12 {
		t.Errorf("MaxQuestions = %d, want 12", cfg.Story.MaxQuestions)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %s, want warn", cfg.Logging.Level)
	}
	if cfg.Logging.Format != domainconfig.DefaultLogFormat {
		t.Errorf("Format = %s, want untouched default", cfg.Logging.Format)
	}
}

func TestApplyEnv_KeepsValuesWhenUnset(t *testing.T) {
	cfg := domainconfig.Default()
	cfg.Story.Seed = 77

	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Story.Seed != 77 {
		t.Errorf("Seed = %d, want 77", cfg.Story.Seed)
	}
}

func TestApplyEnv_InvalidNumber(t *testing.T) {
	t.Setenv("STORY_MAX_QUESTIONS", "many")

	err := ApplyEnv(domainconfig.Default())
	if !errors.Is(err, domainconfig.ErrEnvOverrideFailed) {
		t.Errorf("ApplyEnv() error = %v, want ErrEnvOverrideFailed", err)
	}
}

func TestApplyEnv_InvalidLevel(t *testing.T) {
	t.Setenv("STORY_LOG_LEVEL", "shouting")

	err := ApplyEnv(domainconfig.Default())
	if !errors.Is(err, domainconfig.ErrValidationFailed) {
		t.Errorf("ApplyEnv() error = %v, want ErrValidationFailed", err)
	}
}

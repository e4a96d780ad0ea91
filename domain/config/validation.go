package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Path is the path to the invalid field.
	Path string
	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e), strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validFormats = []string{"json", "console"}
)

// Validator validates story configuration.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the configuration and returns any errors.
func (v *Validator) Validate(config *StoryConfig) ValidationErrors {
	v.errors = nil

	if config.Name == "" {
		v.addError("name", "name is required")
	}
	v.validateStory(config.Story)
	v.validateLogging(config.Logging)

	return v.errors
}

func (v *Validator) addError(path, message string) {
	v.errors = append(v.errors, ValidationError{Path: path, Message: message})
}

func (v *Validator) validateStory(s StorySettings) {
	if s.MaxQuestions < 0 {
		v.addError("story.max_questions", "must not be negative")
	}
	if s.Timeout < 0 {
		v.addError("story.timeout", "must not be negative")
	}
}

func (v *Validator) validateLogging(l LoggingConfig) {
	if l.Level != "" && !contains(validLevels, l.Level) {
		v.addError("logging.level", fmt.Sprintf("must be one of %s", strings.Join(validLevels, ", ")))
	}
	if l.Format != "" && !contains(validFormats, l.Format) {
		v.addError("logging.format", fmt.Sprintf("must be one of %s", strings.Join(validFormats, ", ")))
	}
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateOptions holds options for the validate command.
type validateOptions struct {
	configPath string
	strict     bool
}

// newValidateCmd creates the validate command.
func (a *App) newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Long: `Validate a story configuration file for correctness.

This command checks:
  - File format (YAML or JSON)
  - Required fields (name)
  - Field constraints (story, logging)
  - Environment variable references (in strict mode)

Examples:
  # Validate a configuration file
  story validate -c story.yaml

  # Strict validation (fail on missing env vars)
  story validate -c story.yaml --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validateConfig(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Enable strict validation (fail on missing env vars)")

	return cmd
}

// validateConfig validates the configuration file.
func (a *App) validateConfig(opts *validateOptions) error {
	if opts.configPath == "" {
		return fmt.Errorf("configuration file path is required (-c flag)")
	}

	cfg, err := loadConfig(opts.configPath, opts.strict)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(a.stdout, "✓ Configuration is valid\n")
	fmt.Fprintf(a.stdout, "  Name: %s\n", cfg.Name)
	if cfg.Version != "" {
		fmt.Fprintf(a.stdout, "  Version: %s\n", cfg.Version)
	}

	// Summary
	fmt.Fprintf(a.stdout, "\nConfiguration summary:\n")
	if cfg.Story.Seed != 0 {
		fmt.Fprintf(a.stdout, "  Seed: %d\n", cfg.Story.Seed)
	} else {
		fmt.Fprintf(a.stdout, "  Seed: random\n")
	}
	fmt.Fprintf(a.stdout, "  Max questions: %d\n", cfg.Story.MaxQuestions)
	if timeout := cfg.Story.Timeout.Duration(); timeout > 0 {
		fmt.Fprintf(a.stdout, "  Timeout: %s\n", timeout)
	}
	fmt.Fprintf(a.stdout, "  Logging: %s (%s)\n", cfg.Logging.Level, cfg.Logging.Format)
	if cfg.Telemetry.Metrics {
		fmt.Fprintf(a.stdout, "  Metrics: enabled\n")
	}
	if cfg.Telemetry.Tracing {
		fmt.Fprintf(a.stdout, "  Tracing: enabled\n")
	}

	return nil
}

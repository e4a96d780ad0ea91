package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/story-go/application"
	"github.com/felixgeelhaar/story-go/domain/config"
	"github.com/felixgeelhaar/story-go/domain/story"
	infraconfig "github.com/felixgeelhaar/story-go/infrastructure/config"
	"github.com/felixgeelhaar/story-go/infrastructure/logging"
	"github.com/felixgeelhaar/story-go/infrastructure/telemetry"
)

// runOptions holds options for the run command.
type runOptions struct {
	configPath   string
	seed         int64
	maxQuestions int
	verdict      string
	timeout      time.Duration
	verbose      bool
	jsonOutput   bool
	trace        bool
}

// newRunCmd creates the run command.
func (a *App) newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Narrate one story",
		Long: `Narrate one story from planning to its conclusion and print its prose.

Settings come from an optional configuration file, then STORY_* environment
variables, then flags.

Examples:
  # Narrate with a fresh random seed
  story run

  # Replay a story
  story run --seed 42

  # Reject low-certainty proposals and print the result as JSON
  story run --verdict by-certainty --json

  # Export spans to stderr
  story run -c story.yaml --trace`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStory(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed (0 draws a fresh one)")
	cmd.Flags().IntVar(&opts.maxQuestions, "max-questions", 0, "Maximum questioning rounds (overrides config)")
	cmd.Flags().StringVar(&opts.verdict, "verdict", string(application.VerdictAcceptFirst), "How a certain proposal is judged (accept-first, by-certainty)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Narration timeout (overrides config)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Export trace spans to stderr")

	return cmd
}

// loadConfig reads the configuration file if given and overlays the
// environment.
func loadConfig(path string, strict bool) (*config.StoryConfig, error) {
	cfg := config.Default()
	if path != "" {
		loader := infraconfig.NewLoader(infraconfig.WithStrictEnv(strict))
		loaded, err := loader.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	if err := infraconfig.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runStory narrates a story with the given options.
func (a *App) runStory(cmd *cobra.Command, opts *runOptions) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(opts.configPath, false)
	if err != nil {
		return err
	}

	// Override config values with CLI options
	if cmd.Flags().Changed("seed") {
		cfg.Story.Seed = opts.seed
	}
	if opts.maxQuestions > 0 {
		cfg.Story.MaxQuestions = opts.maxQuestions
	}
	if opts.timeout > 0 {
		cfg.Story.Timeout = config.Duration(opts.timeout)
	}
	if opts.trace {
		cfg.Telemetry.Tracing = true
	}

	level := cfg.Logging.Level
	if opts.verbose {
		level = "debug"
	}
	logger := logging.New(logging.Config{
		Level:  level,
		Format: cfg.Logging.Format,
		Output: a.stderr,
	})

	narratorOpts := []application.Option{
		application.WithSeed(cfg.Story.Seed),
		application.WithMaxQuestions(cfg.Story.MaxQuestions),
		application.WithVerdict(application.Verdict(opts.verdict)),
		application.WithLogger(logger),
	}

	if cfg.Telemetry.Metrics {
		mp, err := telemetry.NewMeterProvider(telemetry.ExportConfig{
			ServiceVersion: Version,
			Output:         a.stderr,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics exporter: %w", err)
		}
		// Shutdown performs the final collection and export.
		defer func() { _ = mp.Shutdown(context.WithoutCancel(ctx)) }()

		metrics := mp.Metrics()
		if err := metrics.Error(); err != nil {
			return fmt.Errorf("failed to create metrics: %w", err)
		}
		narratorOpts = append(narratorOpts, application.WithMetrics(metrics))
	}

	if cfg.Telemetry.Tracing {
		tp, err := telemetry.NewTracerProvider(telemetry.TracingConfig{
			ServiceVersion: Version,
			Output:         a.stderr,
			PrettyPrint:    true,
		})
		if err != nil {
			return fmt.Errorf("failed to create tracer: %w", err)
		}
		defer func() { _ = tp.Shutdown(context.WithoutCancel(ctx)) }()
		narratorOpts = append(narratorOpts, application.WithTracer(tp.Tracer()))
	}

	narrator, err := application.NewNarrator(narratorOpts...)
	if err != nil {
		return err
	}

	// Apply timeout if specified
	if timeout := cfg.Story.Timeout.Duration(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := narrator.Narrate(ctx)
	if err != nil {
		if errors.Is(err, story.ErrUndecided) && result != nil {
			_, _ = fmt.Fprintf(a.stderr, "Story left undecided (seed %d)\n", result.Seed)
		}
		return fmt.Errorf("narration failed: %w", err)
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	_, _ = fmt.Fprintf(a.stdout, "%s\n\n%s\n", result.Title, result.FormattedProse)

	if opts.verbose {
		_, _ = fmt.Fprintf(a.stdout, "\nOutcome: %s\n", result.Outcome)
		_, _ = fmt.Fprintf(a.stdout, "Certainty: %d\n", result.Certainty)
		_, _ = fmt.Fprintf(a.stdout, "Questions: %d\n", result.Questions)
		_, _ = fmt.Fprintf(a.stdout, "Seed: %d\n", result.Seed)
		_, _ = fmt.Fprintf(a.stdout, "Duration: %s\n", result.Duration)
	}

	return nil
}

// Package application provides the narration services built on the story
// phase machine.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/felixgeelhaar/story-go/domain/ledger"
	"github.com/felixgeelhaar/story-go/domain/story"
	"github.com/felixgeelhaar/story-go/infrastructure/entropy"
	"github.com/felixgeelhaar/story-go/infrastructure/logging"
	"github.com/felixgeelhaar/story-go/infrastructure/statemachine"
	"github.com/felixgeelhaar/story-go/infrastructure/telemetry"
)

// DefaultMaxQuestions bounds the questioning loop when no limit is set.
const DefaultMaxQuestions = 1000

// Narration outcomes.
const (
	OutcomeAccepted  = "accepted"
	OutcomeRejected  = "rejected"
	OutcomeUndecided = "undecided"
)

// Verdict decides between accepting and rejecting a certain experiment.
type Verdict string

const (
	// VerdictAcceptFirst accepts whenever acceptance is permitted. Both
	// outcomes share a guard, so this always accepts.
	VerdictAcceptFirst Verdict = "accept-first"

	// VerdictByCertainty accepts high certainty and rejects low certainty.
	VerdictByCertainty Verdict = "by-certainty"
)

// IsValid reports whether v is a known verdict.
func (v Verdict) IsValid() bool {
	return v == VerdictAcceptFirst || v == VerdictByCertainty
}

// NarratorConfig contains configuration for the narrator.
type NarratorConfig struct {
	Source       story.Source
	Seed         int64
	MaxQuestions int
	Verdict      Verdict
	Metrics      telemetry.Metrics
	Tracer       trace.Tracer
	Logger       *bolt.Logger
}

// Narrator drives a story from planning to its conclusion.
type Narrator struct {
	source       story.Source
	seed         int64
	maxQuestions int
	verdict      Verdict
	metrics      telemetry.Metrics
	tracer       trace.Tracer
	logger       *logging.Logger
}

// Result describes a finished narration.
type Result struct {
	StoryID        string         `json:"story_id"`
	Title          string         `json:"title"`
	Phase          story.Phase    `json:"phase"`
	Outcome        string         `json:"outcome"`
	Introduction   string         `json:"introduction"`
	Prose          []string       `json:"prose"`
	FormattedProse string         `json:"formatted_prose"`
	Certainty      int            `json:"certainty"`
	Questions      int            `json:"questions"`
	Seed           int64          `json:"seed,omitempty"`
	Duration       time.Duration  `json:"duration_ns"`
	Ledger         []ledger.Entry `json:"ledger,omitempty"`
}

// NewNarrator creates a narrator with the given options.
func NewNarrator(opts ...Option) (*Narrator, error) {
	cfg := NarratorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := &Narrator{
		source:       cfg.Source,
		maxQuestions: cfg.MaxQuestions,
		verdict:      cfg.Verdict,
		metrics:      cfg.Metrics,
		tracer:       cfg.Tracer,
		logger:       logging.Wrap(cfg.Logger),
	}

	// Set defaults
	if n.source == nil {
		src, seed, err := entropy.FromSeed(cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("failed to seed narrator: %w", err)
		}
		n.source = src
		n.seed = seed
	}
	if n.maxQuestions <= 0 {
		n.maxQuestions = DefaultMaxQuestions
	}
	if n.verdict == "" {
		n.verdict = VerdictAcceptFirst
	}
	if !n.verdict.IsValid() {
		return nil, fmt.Errorf("unknown verdict %q", n.verdict)
	}
	if n.metrics == nil {
		n.metrics = &telemetry.NoopMetricsProvider{}
	}
	if n.tracer == nil {
		n.tracer = telemetry.NoopTracer()
	}

	return n, nil
}

// Seed returns the seed of the narrator's source, or zero when the source
// was supplied directly.
func (n *Narrator) Seed() int64 {
	return n.seed
}

// Narrate tells one story. When questioning hits the limit, the partial
// result is returned along with story.ErrUndecided.
func (n *Narrator) Narrate(ctx context.Context) (*Result, error) {
	started := time.Now()
	s := story.New()
	title := story.Title(n.source)

	ctx, span := n.tracer.Start(ctx, "story.narrate", trace.WithAttributes(
		attribute.String("story.id", s.ID),
		attribute.String("story.title", title),
	))
	defer span.End()

	machineCtx := statemachine.NewContext(s, n.source)
	machine, err := statemachine.NewStoryMachine()
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}
	interp := statemachine.NewInterpreter(machine, machineCtx)
	if err := interp.Start(); err != nil {
		return nil, fmt.Errorf("failed to start state machine: %w", err)
	}
	defer interp.Stop()

	machineCtx.Ledger.RecordStarted(title)

	n.logger.Info().
		Add(logging.StoryID(s.ID)).
		Add(logging.Str("title", title)).
		Add(logging.Seed(n.seed)).
		Msg("narration started")

	result := &Result{
		StoryID: s.ID,
		Title:   title,
		Seed:    n.seed,
	}

	for _, e := range []story.Event{story.EventFinishPlanning, story.EventWriteIntroduction} {
		if err := n.fire(ctx, interp, e); err != nil {
			return n.fail(span, result, interp, started, err)
		}
	}
	result.Introduction = s.FormattedProse()

	if err := n.fire(ctx, interp, story.EventProposeExperiment); err != nil {
		return n.fail(span, result, interp, started, err)
	}

	for !s.IsCertain() {
		if err := ctx.Err(); err != nil {
			return n.fail(span, result, interp, started, err)
		}
		if result.Questions >= n.maxQuestions {
			err := fmt.Errorf("%w after %d questions", story.ErrUndecided, result.Questions)
			return n.fail(span, result, interp, started, err)
		}

		if err := n.fire(ctx, interp, story.EventQuestionProposal); err != nil {
			return n.fail(span, result, interp, started, err)
		}
		result.Questions++
		n.metrics.RecordCertainty(ctx, s.Experiment.Certainty)

		n.logger.Debug().
			Add(logging.StoryID(s.ID)).
			Add(logging.Certainty(s.Experiment.Certainty)).
			Add(logging.Questions(result.Questions)).
			Msg("proposal questioned")
	}

	verdict := n.decide(s)
	if err := n.fire(ctx, interp, verdict); err != nil {
		return n.fail(span, result, interp, started, err)
	}
	if interp.CanFire(story.EventWriteConclusion) {
		if err := n.fire(ctx, interp, story.EventWriteConclusion); err != nil {
			return n.fail(span, result, interp, started, err)
		}
	}

	result.Outcome = OutcomeAccepted
	if verdict == story.EventRejectProposal {
		result.Outcome = OutcomeRejected
	}
	n.finish(ctx, result, interp, started)

	span.SetAttributes(
		attribute.String("story.outcome", result.Outcome),
		attribute.Int("story.questions", result.Questions),
	)

	n.logger.Info().
		Add(logging.StoryID(s.ID)).
		Add(logging.Phase(s.Phase)).
		Add(logging.Outcome(result.Outcome)).
		Add(logging.Certainty(result.Certainty)).
		Add(logging.Questions(result.Questions)).
		Add(logging.Duration(result.Duration)).
		Msg("narration completed")

	return result, nil
}

func (n *Narrator) decide(s *story.Story) story.Event {
	if n.verdict == VerdictByCertainty && s.Experiment.Certainty < story.CertaintyLow {
		return story.EventRejectProposal
	}
	return story.EventAcceptProposal
}

// fire sends one event through the interpreter inside its own span.
func (n *Narrator) fire(ctx context.Context, interp *statemachine.Interpreter, e story.Event) error {
	s := interp.Story()
	from := s.Phase

	_, span := n.tracer.Start(ctx, "story.fire", trace.WithAttributes(
		attribute.String("story.event", string(e)),
		attribute.String("phase.from", string(from)),
	))
	defer span.End()

	if err := interp.Fire(e); err != nil {
		n.metrics.RecordRefused(ctx, string(e), string(from))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	n.metrics.RecordTransition(ctx, string(e), string(from), string(s.Phase))
	span.SetAttributes(attribute.String("phase.to", string(s.Phase)))

	n.logger.Debug().
		Add(logging.StoryID(s.ID)).
		Add(logging.Event(e)).
		Add(logging.FromPhase(from)).
		Add(logging.ToPhase(s.Phase)).
		Msg("event fired")

	return nil
}

func (n *Narrator) finish(ctx context.Context, result *Result, interp *statemachine.Interpreter, started time.Time) {
	s := interp.Story()
	machineCtx := interp.Context()

	result.Phase = s.Phase
	result.Prose = append([]string(nil), s.Prose...)
	result.FormattedProse = s.FormattedProse()
	if s.Experiment != nil {
		result.Certainty = s.Experiment.Certainty
	}
	result.Duration = time.Since(started)

	machineCtx.Ledger.RecordFinished(s.Phase, result.Outcome, result.Questions)
	result.Ledger = machineCtx.Ledger.Entries()

	n.metrics.RecordNarration(ctx, result.Outcome, result.Questions, result.Duration)
}

func (n *Narrator) fail(span trace.Span, result *Result, interp *statemachine.Interpreter, started time.Time, err error) (*Result, error) {
	result.Outcome = OutcomeUndecided
	n.finish(trace.ContextWithSpan(context.Background(), span), result, interp, started)

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	n.logger.Warn().
		Add(logging.StoryID(result.StoryID)).
		Add(logging.Phase(result.Phase)).
		Add(logging.Questions(result.Questions)).
		Add(logging.ErrorField(err)).
		Msg("narration stopped")

	return result, err
}

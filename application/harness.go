package application

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/story-go/domain/experiment"
	"github.com/felixgeelhaar/story-go/domain/story"
)

// ErrSmokeFailed indicates at least one smoke check failed.
var ErrSmokeFailed = errors.New("smoke checks failed")

// Check is one named assertion of a smoke run.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// Report collects the checks of a smoke run in order, along with a
// transcript of assertions and narration.
type Report struct {
	checks     []Check
	transcript []string
}

// Assert records a check and returns ok.
func (r *Report) Assert(name string, ok bool) bool {
	r.checks = append(r.checks, Check{Name: name, Passed: ok})
	r.transcript = append(r.transcript, "asserting "+name)
	if !ok {
		r.transcript = append(r.transcript, "ASSERT FAILED: "+name)
	}
	return ok
}

// Say appends a narration line to the transcript.
func (r *Report) Say(line string) {
	r.transcript = append(r.transcript, line)
}

// Transcript returns a copy of the transcript lines.
func (r *Report) Transcript() []string {
	lines := make([]string, len(r.transcript))
	copy(lines, r.transcript)
	return lines
}

// Checks returns a copy of all recorded checks.
func (r *Report) Checks() []Check {
	checks := make([]Check, len(r.checks))
	copy(checks, r.checks)
	return checks
}

// Failed returns the checks that did not pass.
func (r *Report) Failed() []Check {
	var failed []Check
	for _, c := range r.checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Err returns nil when every check passed, otherwise ErrSmokeFailed naming
// the first failure.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s (%d of %d failed)", ErrSmokeFailed, failed[0].Name, len(failed), len(r.checks))
}

// RunSmoke drives a story from planning to its conclusion with the domain
// dispatcher, asserting each step. It returns the report and the
// introduction prose. Questioning stops after DefaultMaxQuestions rounds.
func RunSmoke(src story.Source) (*Report, string) {
	r := &Report{}

	e := experiment.New()
	r.Assert("true is true", true)
	e.SetBudget(10)
	r.Assert("budget overrides", e.Budget() == 10)
	e.ClearBudget()
	r.Assert("budget resets", !e.HasBudgetOverride() && e.Budget() != 10)

	s := story.New()
	r.Assert("story in planning mode", s.Is(story.PhasePlanning))
	s.Fire(story.EventFinishPlanning, src)
	r.Assert("story ready to write", s.Is(story.PhaseReady))

	s.Fire(story.EventWriteIntroduction, src)
	r.Assert("story has prose", len(s.Prose) > 0)
	r.Assert("story ready to hook", s.CanFire(story.EventProposeExperiment) && s.Is(story.PhaseHook))

	introduction := s.FormattedProse()
	r.Say("\tIntroduction is:\n\n" + introduction)

	prior := s.FormattedProse()
	s.Fire(story.EventProposeExperiment, src)
	r.Assert("story has experiment", s.Experiment != nil)
	r.Assert("more prose was written", len(s.FormattedProse()) > len(prior))
	if s.Experiment == nil {
		return r, introduction
	}

	rounds := 0
	for !s.CanFire(story.EventAcceptProposal) && !s.CanFire(story.EventRejectProposal) {
		if rounds >= DefaultMaxQuestions {
			r.Assert("proposal reached a decision", false)
			return r, introduction
		}
		prior = s.FormattedProse()
		r.Say("questioning proposal")
		s.Fire(story.EventQuestionProposal, src)
		rounds++
		if !r.Assert("questioning proposal adds prose", len(s.FormattedProse()) > len(prior)) {
			return r, introduction
		}
	}

	if s.CanFire(story.EventAcceptProposal) {
		s.Fire(story.EventAcceptProposal, src)
		r.Say("proposal was accepted")
	}
	if s.CanFire(story.EventRejectProposal) {
		s.Fire(story.EventRejectProposal, src)
		r.Say("proposal was rejected")
	}
	s.Fire(story.EventWriteConclusion, src)
	r.Say("conclusion")
	r.Assert("story concluded", s.Is(story.PhaseConclusion) || s.Is(story.PhaseRejected))

	return r, introduction
}

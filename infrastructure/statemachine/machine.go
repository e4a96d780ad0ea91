// Package statemachine provides the statekit integration for story phases.
package statemachine

import (
	"strings"

	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/story-go/domain/ledger"
	"github.com/felixgeelhaar/story-go/domain/story"
)

// Context carries the story being narrated through the statechart.
type Context struct {
	Story  *story.Story
	Ledger *ledger.Ledger
	Source story.Source
}

// NewContext creates a machine context with a fresh ledger for s.
func NewContext(s *story.Story, src story.Source) *Context {
	return &Context{
		Story:  s,
		Ledger: ledger.New(s.ID),
		Source: src,
	}
}

// State IDs as StateID type for statekit.
const (
	statePlanning     statekit.StateID = statekit.StateID(story.PhasePlanning)
	stateReady        statekit.StateID = statekit.StateID(story.PhaseReady)
	stateIntroduction statekit.StateID = statekit.StateID(story.PhaseIntroduction)
	stateHook         statekit.StateID = statekit.StateID(story.PhaseHook)
	stateInspection   statekit.StateID = statekit.StateID(story.PhaseInspection)
	stateConclusion   statekit.StateID = statekit.StateID(story.PhaseConclusion)
	stateRejected     statekit.StateID = statekit.StateID(story.PhaseRejected)
)

// Event types as statekit sees them; EventType derives the same names.
const (
	eventFinishPlanning    = "FINISH_PLANNING"
	eventWriteIntroduction = "WRITE_INTRODUCTION"
	eventProposeExperiment = "PROPOSE_EXPERIMENT"
	eventQuestionProposal  = "QUESTION_PROPOSAL"
	eventAcceptProposal    = "ACCEPT_PROPOSAL"
	eventRejectProposal    = "REJECT_PROPOSAL"
	eventWriteConclusion   = "WRITE_CONCLUSION"
)

// NewStoryMachine creates the story statechart. It mirrors story.Transitions;
// the introduction state is declared but nothing enters it.
func NewStoryMachine() (*statekit.MachineConfig[*Context], error) {
	return statekit.NewMachine[*Context]("story").
		WithInitial(statePlanning).
		WithContext(&Context{}).
		WithAction("transition", applyTransition).
		WithGuard("certain", guardCertain).
		State(statePlanning).
			On(eventFinishPlanning).Target(stateReady).Do("transition").
			Done().
		State(stateReady).
			On(eventWriteIntroduction).Target(stateHook).Do("transition").
			Done().
		State(stateIntroduction).
			Done().
		State(stateHook).
			On(eventProposeExperiment).Target(stateInspection).Do("transition").
			Done().
		State(stateInspection).
			On(eventQuestionProposal).Target(stateInspection).Do("transition").
			On(eventAcceptProposal).Target(stateConclusion).Guard("certain").Do("transition").
			On(eventRejectProposal).Target(stateRejected).Guard("certain").Do("transition").
			Done().
		State(stateConclusion).
			On(eventWriteConclusion).Target(stateConclusion).Do("transition").
			Done().
		State(stateRejected).
			Final().
			Done().
		Build()
}

// EventType returns the statekit event type for a story event.
func EventType(e story.Event) statekit.EventType {
	return statekit.EventType(strings.ToUpper(string(e)))
}

// PhaseFromMachine converts the machine state ID to a story phase.
func PhaseFromMachine(stateID statekit.StateID) story.Phase {
	return story.Phase(stateID)
}

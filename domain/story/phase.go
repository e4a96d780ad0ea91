// Package story provides the story entity and its phase state machine.
package story

// Phase is a discrete step in a story's narrative progression.
type Phase string

const (
	PhasePlanning     Phase = "planning"     // Initial phase
	PhaseReady        Phase = "ready"        // Prose reset, ready to write
	PhaseIntroduction Phase = "introduction" // Declared, never entered
	PhaseHook         Phase = "hook"         // Introduction written
	PhaseInspection   Phase = "inspection"   // Experiment under scrutiny
	PhaseConclusion   Phase = "conclusion"   // Proposal accepted
	PhaseRejected     Phase = "rejected"     // Proposal rejected, terminal
)

// IsValid returns true if the phase is declared.
func (p Phase) IsValid() bool {
	switch p {
	case PhasePlanning, PhaseReady, PhaseIntroduction, PhaseHook,
		PhaseInspection, PhaseConclusion, PhaseRejected:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no event leaves this phase.
func (p Phase) IsTerminal() bool {
	return p == PhaseRejected
}

// String returns the string representation of the phase.
func (p Phase) String() string {
	return string(p)
}

// AllPhases returns every declared phase.
func AllPhases() []Phase {
	return []Phase{
		PhasePlanning,
		PhaseReady,
		PhaseIntroduction,
		PhaseHook,
		PhaseInspection,
		PhaseConclusion,
		PhaseRejected,
	}
}

// Event is a named request to move a story between phases.
type Event string

const (
	EventFinishPlanning    Event = "finish_planning"
	EventWriteIntroduction Event = "write_introduction"
	EventProposeExperiment Event = "propose_experiment"
	EventQuestionProposal  Event = "question_proposal"
	EventAcceptProposal    Event = "accept_proposal"
	EventRejectProposal    Event = "reject_proposal"
	EventWriteConclusion   Event = "write_conclusion"
)

// IsValid returns true if the event appears in the transition table.
func (e Event) IsValid() bool {
	for _, t := range table {
		if t.Event == e {
			return true
		}
	}
	return false
}

// String returns the string representation of the event.
func (e Event) String() string {
	return string(e)
}

// AllEvents returns every event in table order.
func AllEvents() []Event {
	events := make([]Event, 0, len(table))
	for _, t := range table {
		events = append(events, t.Event)
	}
	return events
}

// ParseEvent converts a name into an Event.
func ParseEvent(name string) (Event, error) {
	e := Event(name)
	if !e.IsValid() {
		return "", ErrUnknownEvent
	}
	return e, nil
}

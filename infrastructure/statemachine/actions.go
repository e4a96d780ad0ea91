package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/story-go/domain/story"
)

// FirePayload carries the resolved transition with an event.
type FirePayload struct {
	Event story.Event
	From  story.Phase
	To    story.Phase
}

// applyTransition runs the story's side effects for the transition, moves the
// story to its target phase and records it. Actions receive **Context.
func applyTransition(ctx **Context, event statekit.Event) {
	if ctx == nil || *ctx == nil || (*ctx).Story == nil {
		return
	}
	c := *ctx

	payload, ok := event.Payload.(FirePayload)
	if !ok {
		return
	}

	story.RunHooks(c.Story, payload.From, payload.To, c.Source)
	c.Story.Phase = payload.To

	if c.Ledger != nil {
		c.Ledger.RecordTransition(payload.Event, payload.From, c.Story)
	}
}

package statemachine

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/story-go/domain/story"
)

// Interpreter wraps the statekit interpreter with story-specific behavior.
type Interpreter struct {
	interp *statekit.Interpreter[*Context]
	ctx    *Context
}

// NewInterpreter creates a new interpreter for the story machine.
func NewInterpreter(machine *statekit.MachineConfig[*Context], ctx *Context) *Interpreter {
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **Context) {
		*c = ctx
	})
	return &Interpreter{
		interp: interp,
		ctx:    ctx,
	}
}

// Start enters the initial state. A story that has already progressed is
// resumed from its current phase.
func (i *Interpreter) Start() error {
	i.interp.Start()
	if i.ctx.Story.Phase == story.PhasePlanning {
		return nil
	}
	return i.ResumeFrom(i.ctx.Story.Phase)
}

// Stop stops the interpreter.
func (i *Interpreter) Stop() {
	i.interp.Stop()
}

// Phase returns the statechart's current phase.
func (i *Interpreter) Phase() story.Phase {
	return PhaseFromMachine(i.interp.State().Value)
}

// CanFire reports whether event e is permitted for the story right now.
func (i *Interpreter) CanFire(e story.Event) bool {
	return i.ctx.Story.CanFire(e)
}

// Fire sends event e through the statechart. Refused events are recorded in
// the ledger and reported as story.ErrEventNotPermitted; the story is left
// untouched.
func (i *Interpreter) Fire(e story.Event) error {
	s := i.ctx.Story
	from := s.Phase

	if !e.IsValid() {
		return fmt.Errorf("%w: %s", story.ErrUnknownEvent, e)
	}
	if !s.CanFire(e) {
		if i.ctx.Ledger != nil {
			i.ctx.Ledger.RecordRefused(e, from)
		}
		return fmt.Errorf("%w: %s in phase %s", story.ErrEventNotPermitted, e, from)
	}

	t, _ := story.Lookup(e, from)

	// statekit panics on events the current state does not handle, so the
	// table check above must come first.
	i.interp.Send(statekit.Event{
		Type: EventType(e),
		Payload: FirePayload{
			Event: e,
			From:  t.From,
			To:    t.To,
		},
	})

	if got := i.Phase(); got != t.To {
		return fmt.Errorf("statechart in %s after %s, want %s", got, e, t.To)
	}
	return nil
}

// IsTerminal returns true if the interpreter is in a final state.
func (i *Interpreter) IsTerminal() bool {
	return i.interp.Done()
}

// Matches checks if the current state matches the given phase.
func (i *Interpreter) Matches(p story.Phase) bool {
	return i.interp.Matches(statekit.StateID(p))
}

// Context returns the interpreter context.
func (i *Interpreter) Context() *Context {
	return i.ctx
}

// Story returns the story being driven.
func (i *Interpreter) Story() *story.Story {
	return i.ctx.Story
}

// ResumeFrom restores the statechart to phase p.
func (i *Interpreter) ResumeFrom(p story.Phase) error {
	if !p.IsValid() {
		return fmt.Errorf("cannot resume: unknown phase %q", p)
	}

	snapshot := statekit.Snapshot[*Context]{
		MachineID:    "story",
		CurrentState: statekit.StateID(p),
		Context:      i.ctx,
		CreatedAt:    time.Now(),
	}
	if err := i.interp.Restore(snapshot); err != nil {
		return fmt.Errorf("failed to restore state: %w", err)
	}

	i.ctx.Story.Phase = p
	return nil
}

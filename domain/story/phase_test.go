package story

import (
	"errors"
	"testing"
)

func TestPhase_IsValid(t *testing.T) {
	t.Parallel()

	for _, p := range AllPhases() {
		if !p.IsValid() {
			t.Errorf("%s.IsValid() = false", p)
		}
	}
	if Phase("proposal").IsValid() {
		t.Error("proposal is not a declared phase")
	}
}

func TestPhase_IsTerminal(t *testing.T) {
	t.Parallel()

	for _, p := range AllPhases() {
		want := p == PhaseRejected
		if got := p.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", p, got, want)
		}
	}
}

func TestParseEvent(t *testing.T) {
	t.Parallel()

	for _, e := range AllEvents() {
		got, err := ParseEvent(string(e))
		if err != nil {
			t.Errorf("ParseEvent(%q) error = %v", e, err)
		}
		if got != e {
			t.Errorf("ParseEvent(%q) = %q", e, got)
		}
	}

	if _, err := ParseEvent("write_epilogue"); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("ParseEvent(unknown) error = %v, want ErrUnknownEvent", err)
	}
}

func TestAllEvents(t *testing.T) {
	t.Parallel()

	if got := len(AllEvents()); got != 7 {
		t.Errorf("len(AllEvents()) = %d, want 7", got)
	}
}

func TestTransitions_ReturnsCopy(t *testing.T) {
	t.Parallel()

	ts := Transitions()
	ts[0].To = PhaseRejected

	tr, ok := Lookup(EventFinishPlanning, PhasePlanning)
	if !ok || tr.To != PhaseReady {
		t.Errorf("Lookup(finish_planning) = %+v, %v; table was mutated", tr, ok)
	}
}

func TestTransitions_Guards(t *testing.T) {
	t.Parallel()

	for _, tr := range Transitions() {
		want := tr.Event == EventAcceptProposal || tr.Event == EventRejectProposal
		if tr.Guarded() != want {
			t.Errorf("%s.Guarded() = %v, want %v", tr.Event, tr.Guarded(), want)
		}
	}
}

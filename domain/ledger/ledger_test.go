package ledger_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/felixgeelhaar/story-go/domain/ledger"
	"github.com/felixgeelhaar/story-go/domain/story"
)

func TestNew(t *testing.T) {
	t.Parallel()

	l := ledger.New("story-123")
	if l == nil {
		t.Fatal("New() returned nil")
	}
	if l.StoryID() != "story-123" {
		t.Errorf("StoryID() = %s, want story-123", l.StoryID())
	}
	if l.Count() != 0 {
		t.Errorf("Count() = %d, want 0 for new ledger", l.Count())
	}
	if l.LastEntry() != nil {
		t.Error("LastEntry() should be nil for new ledger")
	}
}

func TestLedger_Append(t *testing.T) {
	t.Parallel()

	t.Run("sets story ID on entry", func(t *testing.T) {
		t.Parallel()

		l := ledger.New("story-1")
		l.Append(ledger.NewEntry(ledger.EntryStoryStarted, "", story.PhasePlanning, nil))

		if got := l.Entries()[0].StoryID; got != "story-1" {
			t.Errorf("Entry StoryID = %s, want story-1", got)
		}
	})

	t.Run("assigns ID and timestamp if empty", func(t *testing.T) {
		t.Parallel()

		l := ledger.New("story-1")
		l.Append(ledger.Entry{Type: ledger.EntryStoryStarted})

		entry := l.Entries()[0]
		if entry.ID == "" {
			t.Error("Entry should have ID assigned")
		}
		if entry.Timestamp.IsZero() {
			t.Error("Entry should have timestamp assigned")
		}
	})
}

func TestLedger_EntriesIsCopy(t *testing.T) {
	t.Parallel()

	l := ledger.New("story-1")
	l.RecordStarted("Bob's Experiment")

	entries := l.Entries()
	entries[0].Type = ledger.EntryEventRefused

	if l.Entries()[0].Type != ledger.EntryStoryStarted {
		t.Error("Entries() should return a copy")
	}
}

func TestLedger_RecordStarted(t *testing.T) {
	t.Parallel()

	l := ledger.New("story-1")
	l.RecordStarted("Jim's Experiment")

	entry := l.LastEntry()
	if entry.Type != ledger.EntryStoryStarted {
		t.Errorf("Type = %s, want story_started", entry.Type)
	}
	if entry.Phase != story.PhasePlanning {
		t.Errorf("Phase = %s, want planning", entry.Phase)
	}

	var details ledger.StartedDetails
	if err := entry.DecodeDetails(&details); err != nil {
		t.Fatalf("DecodeDetails() error = %v", err)
	}
	if details.Title != "Jim's Experiment" {
		t.Errorf("Title = %q, want Jim's Experiment", details.Title)
	}
}

func TestLedger_RecordTransition(t *testing.T) {
	t.Parallel()

	s := story.New()
	l := ledger.New(s.ID)

	s.Fire(story.EventFinishPlanning, nil)
	l.RecordTransition(story.EventFinishPlanning, story.PhasePlanning, s)
	s.Fire(story.EventWriteIntroduction, nil)
	l.RecordTransition(story.EventWriteIntroduction, story.PhaseReady, s)
	s.Fire(story.EventProposeExperiment, nil)
	l.RecordTransition(story.EventProposeExperiment, story.PhaseHook, s)

	fifty := 50
	want := []ledger.TransitionDetails{
		{Event: story.EventFinishPlanning, FromPhase: story.PhasePlanning, ToPhase: story.PhaseReady, Prose: 0},
		{Event: story.EventWriteIntroduction, FromPhase: story.PhaseReady, ToPhase: story.PhaseHook, Prose: 1},
		{Event: story.EventProposeExperiment, FromPhase: story.PhaseHook, ToPhase: story.PhaseInspection, Certainty: &fifty, Prose: 2},
	}
	if diff := cmp.Diff(want, l.Transitions()); diff != "" {
		t.Errorf("Transitions() mismatch (-want +got):\n%s", diff)
	}
	if l.LastEntry().Phase != story.PhaseInspection {
		t.Errorf("last entry phase = %s, want inspection", l.LastEntry().Phase)
	}
}

func TestLedger_RecordRefused(t *testing.T) {
	t.Parallel()

	l := ledger.New("story-1")
	l.RecordRefused(story.EventAcceptProposal, story.PhaseInspection)

	refused := l.EntriesByType(ledger.EntryEventRefused)
	if len(refused) != 1 {
		t.Fatalf("EntriesByType(refused) = %d entries, want 1", len(refused))
	}

	var details ledger.RefusedDetails
	if err := refused[0].DecodeDetails(&details); err != nil {
		t.Fatalf("DecodeDetails() error = %v", err)
	}
	if details.Event != story.EventAcceptProposal {
		t.Errorf("Event = %s, want accept_proposal", details.Event)
	}
}

func TestLedger_RecordFinished(t *testing.T) {
	t.Parallel()

	l := ledger.New("story-1")
	l.RecordFinished(story.PhaseConclusion, "accepted", 3)

	var details ledger.FinishedDetails
	if err := l.LastEntry().DecodeDetails(&details); err != nil {
		t.Fatalf("DecodeDetails() error = %v", err)
	}
	if diff := cmp.Diff(ledger.FinishedDetails{Outcome: "accepted", Questions: 3}, details); diff != "" {
		t.Errorf("FinishedDetails mismatch (-want +got):\n%s", diff)
	}
}

func TestEntry_DecodeDetailsNil(t *testing.T) {
	t.Parallel()

	var details ledger.FinishedDetails
	if err := (ledger.Entry{}).DecodeDetails(&details); err != nil {
		t.Errorf("DecodeDetails() on nil details error = %v", err)
	}
}

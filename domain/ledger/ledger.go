package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/story-go/domain/story"
)

// Ledger is an append-only record of everything that happened to a story.
// It is not safe for concurrent use.
type Ledger struct {
	storyID string
	entries []Entry
}

// New creates a new ledger for the given story.
func New(storyID string) *Ledger {
	return &Ledger{
		storyID: storyID,
		entries: make([]Entry, 0),
	}
}

// Append adds an entry to the ledger.
func (l *Ledger) Append(entry Entry) {
	entry.StoryID = l.storyID
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	l.entries = append(l.entries, entry)
}

// Entries returns a copy of all entries.
func (l *Ledger) Entries() []Entry {
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// EntriesByType returns entries filtered by type.
func (l *Ledger) EntriesByType(entryType EntryType) []Entry {
	var filtered []Entry
	for _, e := range l.entries {
		if e.Type == entryType {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// LastEntry returns the most recent entry, or nil if empty.
func (l *Ledger) LastEntry() *Entry {
	if len(l.entries) == 0 {
		return nil
	}
	entry := l.entries[len(l.entries)-1]
	return &entry
}

// Count returns the number of entries.
func (l *Ledger) Count() int {
	return len(l.entries)
}

// StoryID returns the associated story ID.
func (l *Ledger) StoryID() string {
	return l.storyID
}

// RecordStarted records the start of a story.
func (l *Ledger) RecordStarted(title string) {
	l.Append(NewEntry(EntryStoryStarted, l.storyID, story.PhasePlanning, StartedDetails{
		Title: title,
	}))
}

// RecordTransition records a fired event. The certainty is captured when
// the story has an experiment.
func (l *Ledger) RecordTransition(e story.Event, from story.Phase, s *story.Story) {
	details := TransitionDetails{
		Event:     e,
		FromPhase: from,
		ToPhase:   s.Phase,
		Prose:     len(s.Prose),
	}
	if s.Experiment != nil {
		c := s.Experiment.Certainty
		details.Certainty = &c
	}
	l.Append(NewEntry(EntryTransition, l.storyID, s.Phase, details))
}

// RecordRefused records an event that was not permitted.
func (l *Ledger) RecordRefused(e story.Event, phase story.Phase) {
	l.Append(NewEntry(EntryEventRefused, l.storyID, phase, RefusedDetails{
		Event: e,
	}))
}

// RecordFinished records the end of a story.
func (l *Ledger) RecordFinished(phase story.Phase, outcome string, questions int) {
	l.Append(NewEntry(EntryStoryFinished, l.storyID, phase, FinishedDetails{
		Outcome:   outcome,
		Questions: questions,
	}))
}

// Transitions returns the decoded details of every transition entry in order.
func (l *Ledger) Transitions() []TransitionDetails {
	var out []TransitionDetails
	for _, e := range l.EntriesByType(EntryTransition) {
		var d TransitionDetails
		if err := e.DecodeDetails(&d); err == nil {
			out = append(out, d)
		}
	}
	return out
}

// Package ledger provides an append-only audit trail of story progression.
package ledger

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/story-go/domain/story"
)

// EntryType classifies the type of ledger entry.
type EntryType string

const (
	EntryStoryStarted  EntryType = "story_started"
	EntryStoryFinished EntryType = "story_finished"
	EntryTransition    EntryType = "transition"
	EntryEventRefused  EntryType = "event_refused"
)

// Entry represents a single record in the ledger.
type Entry struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Type      EntryType       `json:"type"`
	StoryID   string          `json:"story_id"`
	Phase     story.Phase     `json:"phase,omitempty"`
	Details   json.RawMessage `json:"details,omitempty"`
}

// StartedDetails contains details for story started entries.
type StartedDetails struct {
	Title string `json:"title"`
}

// TransitionDetails contains details for transition entries.
type TransitionDetails struct {
	Event     story.Event `json:"event"`
	FromPhase story.Phase `json:"from_phase"`
	ToPhase   story.Phase `json:"to_phase"`
	Certainty *int        `json:"certainty,omitempty"`
	Prose     int         `json:"prose"`
}

// RefusedDetails contains details for refused event entries.
type RefusedDetails struct {
	Event story.Event `json:"event"`
}

// FinishedDetails contains details for story finished entries.
type FinishedDetails struct {
	Outcome   string `json:"outcome"`
	Questions int    `json:"questions"`
}

// NewEntry creates a new ledger entry.
func NewEntry(entryType EntryType, storyID string, phase story.Phase, details any) Entry {
	var detailsJSON json.RawMessage
	if details != nil {
		detailsJSON, _ = json.Marshal(details)
	}

	return Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Type:      entryType,
		StoryID:   storyID,
		Phase:     phase,
		Details:   detailsJSON,
	}
}

// DecodeDetails unmarshals the entry details into the given struct.
func (e Entry) DecodeDetails(v any) error {
	if e.Details == nil {
		return nil
	}
	return json.Unmarshal(e.Details, v)
}

package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/felixgeelhaar/story-go/domain/story"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// StoryID adds a story ID field.
func StoryID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("story_id", id)
	}
}

// Phase adds a phase field.
func Phase(p story.Phase) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("phase", string(p))
	}
}

// FromPhase adds a from_phase field for transitions.
func FromPhase(p story.Phase) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("from_phase", string(p))
	}
}

// ToPhase adds a to_phase field for transitions.
func ToPhase(p story.Phase) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("to_phase", string(p))
	}
}

// Event adds an event name field.
func Event(ev story.Event) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("event", string(ev))
	}
}

// Certainty adds the experiment certainty.
func Certainty(c int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("certainty", c)
	}
}

// Questions adds the number of questioning rounds.
func Questions(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("questions", n)
	}
}

// Outcome adds the narration outcome.
func Outcome(o string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("outcome", o)
	}
}

// Seed adds the random seed.
func Seed(seed int64) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("seed", seed)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}

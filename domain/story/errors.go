package story

import "errors"

// Domain errors for story progression.
var (
	// ErrUnknownEvent indicates the event name is not in the transition table.
	ErrUnknownEvent = errors.New("unknown event")

	// ErrEventNotPermitted indicates the event cannot fire in the current
	// phase or its guard does not hold.
	ErrEventNotPermitted = errors.New("event not permitted")

	// ErrUndecided indicates questioning stopped before the experiment
	// became certain.
	ErrUndecided = errors.New("experiment never became certain")
)

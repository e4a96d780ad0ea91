package statemachine

import "github.com/felixgeelhaar/statekit"

// guardCertain holds once the experiment's certainty leaves the undecided
// range. In statekit, guards receive the context by value, here *Context.
func guardCertain(ctx *Context, _ statekit.Event) bool {
	if ctx == nil || ctx.Story == nil {
		return false
	}
	return ctx.Story.IsCertain()
}

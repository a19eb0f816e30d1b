// Package statestack provides a stack-based state machine for frame-driven
// applications such as games and simulations.
//
// A Machine owns an ordered stack of States. The top of the stack is the
// current state; the machine separately tracks the active state, which is the
// one receiving Update calls. Caller code pushes an initial state and then
// calls Machine.Update once per frame:
//
//	type Title struct {
//	    statestack.Base
//	}
//
//	func (t *Title) Update() {
//	    if startPressed() {
//	        t.Machine().ReplaceState(&Play{})
//	    }
//	}
//
//	m := statestack.NewMachine()
//	_ = m.PushState(&Title{})
//	for running {
//	    m.Update()
//	}
//	m.Unload()
//
// # Lifecycle
//
// Every state embeds Base and may override Load, Start, Update, Stop and
// Unload. PushState fires Load immediately. The next Update notices the stack
// top differs from the active state, fires Stop on the old active state and
// Start on the new top. The new state's own Update runs from the following
// tick on, so a state pushed during a tick never updates in that tick.
//
// PopState fires Stop and Unload right away. Popping the active state also
// moves the active reference to the exposed state without calling its Start.
//
// # Misuse
//
// Pushing a state that is already on a stack returns an error wrapping
// ErrPreconditionViolation and fires no hooks.
//
// For a fixed-rate loop with cross-goroutine command delivery see the
// realtime package. For data shared between states see the datastore package.
package statestack

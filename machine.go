package statestack

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/comalice/statestack/internal/logger"
)

// Status describes the machine itself rather than any State.
type Status int

const (
	// StatusEmpty means no state is on the stack and none is active.
	StatusEmpty Status = iota
	// StatusSettled means the tracked active state is the stack top.
	StatusSettled
	// StatusDirty means the stack changed since the last Update and the
	// next Update will move the active state to the top.
	StatusDirty
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusSettled:
		return "settled"
	case StatusDirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// Machine is a stack of States driven by an external tick.
//
// Becoming active is deferred: a pushed state receives Load immediately but
// Start only on the next Update, and its own Update on the tick after that.
// Removal is immediate: PopState fires Stop and Unload before returning.
//
// A Machine is not safe for concurrent use. Hooks may call PushState,
// PopState and ReplaceState on their own machine.
type Machine struct {
	id        string
	states    []State
	active    State
	logger    *slog.Logger
	observers []Observer
}

// NewMachine creates an empty machine.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		id:     uuid.NewString(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logger.MachineID(m.id))
	return m
}

// ID returns the machine identifier.
func (m *Machine) ID() string { return m.id }

// State returns the top of the stack, or nil if the stack is empty.
func (m *Machine) State() State {
	if len(m.states) == 0 {
		return nil
	}
	return m.states[len(m.states)-1]
}

// Count returns the number of states on the stack.
func (m *Machine) Count() int { return len(m.states) }

// Active returns the state that last received Start without a matching Stop
// from the transition logic. It lags State by one Update after a push.
func (m *Machine) Active() State { return m.active }

// States returns a copy of the stack, bottom first.
func (m *Machine) States() []State {
	out := make([]State, len(m.states))
	copy(out, m.states)
	return out
}

func (m *Machine) Status() Status {
	top := m.State()
	switch {
	case top == nil && m.active == nil:
		return StatusEmpty
	case top == m.active:
		return StatusSettled
	default:
		return StatusDirty
	}
}

// PushState attaches s, fires its Load hook and places it on top of the
// stack. s becomes active on the next Update.
func (m *Machine) PushState(s State) error {
	if s == nil {
		return newPreconditionError("push", s, errNilState)
	}
	if err := s.attach(m); err != nil {
		return newPreconditionError("push", s, err)
	}

	m.fire(HookLoad, s)
	m.states = append(m.states, s)

	m.logger.Debug("state pushed", logger.State(StateName(s)), logger.Depth(len(m.states)))
	return nil
}

// PopState removes the top state and fires its Stop and Unload hooks. It
// returns nil and fires nothing when the stack is empty.
//
// If the removed state was the active state, the active state moves to the
// new top right away and the next Update does not fire Start for it.
func (m *Machine) PopState() State {
	n := len(m.states)
	if n == 0 {
		return nil
	}

	s := m.states[n-1]
	m.states[n-1] = nil
	m.states = m.states[:n-1]

	if s == m.active {
		m.active = m.State()
	}

	m.fire(HookStop, s)
	m.fire(HookUnload, s)
	s.detach()

	m.logger.Debug("state popped", logger.State(StateName(s)), logger.Depth(len(m.states)))
	return s
}

// ReplaceState pops the top state and pushes s, returning the popped state.
// A nil s is rejected before anything is popped; any other rejection of s
// happens after the pop, so the popped state is returned with the error.
func (m *Machine) ReplaceState(s State) (State, error) {
	if s == nil {
		return nil, newPreconditionError("replace", s, errNilState)
	}

	old := m.PopState()
	if err := m.PushState(s); err != nil {
		return old, err
	}
	return old, nil
}

// ClearStates pops every state, top to bottom.
func (m *Machine) ClearStates() {
	for len(m.states) > 0 {
		m.PopState()
	}
}

// Update runs one tick: the active state's Update hook, then, if the stack
// top has changed, Stop on the previous active state and Start on the new top.
func (m *Machine) Update() {
	if m.active != nil {
		m.fire(HookUpdate, m.active)
	}

	if m.active == m.State() {
		return
	}

	if m.active != nil {
		m.fire(HookStop, m.active)
	}

	m.active = m.State()

	if m.active != nil {
		m.logger.Debug("state activated", logger.State(StateName(m.active)), logger.Depth(len(m.states)))
		m.fire(HookStart, m.active)
	}
}

// Unload stops and unloads every remaining state. Call it once the loop ends.
func (m *Machine) Unload() {
	m.ClearStates()
}

func (m *Machine) fire(h Hook, s State) {
	switch h {
	case HookLoad:
		s.Load()
	case HookStart:
		s.Start()
	case HookUpdate:
		s.Update()
	case HookStop:
		s.Stop()
	case HookUnload:
		s.Unload()
	}

	if len(m.observers) == 0 {
		return
	}
	ev := HookEvent{
		MachineID: m.id,
		Hook:      h,
		State:     StateName(s),
		Depth:     len(m.states),
		Time:      time.Now(),
	}
	for _, o := range m.observers {
		o.OnHook(ev)
	}
}

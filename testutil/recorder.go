// Package testutil provides helpers for asserting lifecycle ordering in tests.
package testutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/comalice/statestack"
)

// Call is one recorded hook invocation.
type Call struct {
	State string
	Hook  statestack.Hook
}

// String renders the call as "Load(A)".
func (c Call) String() string {
	h := c.Hook.String()
	return fmt.Sprintf("%s%s(%s)", strings.ToUpper(h[:1]), h[1:], c.State)
}

// Recorder collects hook calls from RecordingStates in call order.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(state string, h statestack.Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{State: state, Hook: h})
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Strings returns the recorded calls rendered with Call.String. Hooks listed
// in skip are left out.
func (r *Recorder) Strings(skip ...statestack.Hook) []string {
	out := []string{}
	for _, c := range r.Calls() {
		if containsHook(skip, c.Hook) {
			continue
		}
		out = append(out, c.String())
	}
	return out
}

// Count returns how many times hook h fired for the named state.
func (r *Recorder) Count(state string, h statestack.Hook) int {
	n := 0
	for _, c := range r.Calls() {
		if c.State == state && c.Hook == h {
			n++
		}
	}
	return n
}

// Hooks returns the hooks fired for the named state, in order.
func (r *Recorder) Hooks(state string) []statestack.Hook {
	var out []statestack.Hook
	for _, c := range r.Calls() {
		if c.State == state {
			out = append(out, c.Hook)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func containsHook(hooks []statestack.Hook, h statestack.Hook) bool {
	for _, x := range hooks {
		if x == h {
			return true
		}
	}
	return false
}

// RecordingState records every hook into a Recorder and then runs the
// matching callback, if set. Callbacks may push or pop states.
type RecordingState struct {
	statestack.Base

	name string
	rec  *Recorder

	OnLoad   func(s *RecordingState)
	OnStart  func(s *RecordingState)
	OnUpdate func(s *RecordingState)
	OnStop   func(s *RecordingState)
	OnUnload func(s *RecordingState)
}

// NewState returns a RecordingState that records into rec.
func NewState(name string, rec *Recorder) *RecordingState {
	return &RecordingState{name: name, rec: rec}
}

func (s *RecordingState) Name() string { return s.name }

func (s *RecordingState) Load()   { s.run(statestack.HookLoad, s.OnLoad) }
func (s *RecordingState) Start()  { s.run(statestack.HookStart, s.OnStart) }
func (s *RecordingState) Update() { s.run(statestack.HookUpdate, s.OnUpdate) }
func (s *RecordingState) Stop()   { s.run(statestack.HookStop, s.OnStop) }
func (s *RecordingState) Unload() { s.run(statestack.HookUnload, s.OnUnload) }

func (s *RecordingState) run(h statestack.Hook, fn func(*RecordingState)) {
	if s.rec != nil {
		s.rec.record(s.name, h)
	}
	if fn != nil {
		fn(s)
	}
}

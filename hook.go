package statestack

import "time"

// Hook identifies one of the five lifecycle hooks of a State.
type Hook int

const (
	HookLoad Hook = iota
	HookStart
	HookUpdate
	HookStop
	HookUnload
)

func (h Hook) String() string {
	switch h {
	case HookLoad:
		return "load"
	case HookStart:
		return "start"
	case HookUpdate:
		return "update"
	case HookStop:
		return "stop"
	case HookUnload:
		return "unload"
	default:
		return "unknown"
	}
}

// HookEvent describes a hook invocation that has just returned.
type HookEvent struct {
	MachineID string
	Hook      Hook
	State     string
	// Depth is the stack depth after the hook returned.
	Depth int
	Time  time.Time
}

// Observer receives a HookEvent for every hook a Machine invokes. Observers run
// synchronously on the tick goroutine and must not block.
type Observer interface {
	OnHook(ev HookEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev HookEvent)

func (f ObserverFunc) OnHook(ev HookEvent) { f(ev) }

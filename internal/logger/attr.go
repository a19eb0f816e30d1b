package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// MachineID records the machine identifier under the key "machine_id".
func MachineID(id string) slog.Attr {
	return slog.String("machine_id", id)
}

// State records a state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Hook records a lifecycle hook name under the key "hook".
func Hook(name string) slog.Attr {
	return slog.String("hook", name)
}

// Depth records the stack depth under the key "depth".
func Depth(n int) slog.Attr {
	return slog.Int("depth", n)
}

// Tick records the tick number under the key "tick".
func Tick(n uint64) slog.Attr {
	return slog.Uint64("tick", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

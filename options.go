package statestack

import "log/slog"

// Option configures a Machine during construction.
type Option func(*Machine)

// WithID sets the machine identifier reported in logs and hook events.
// Empty IDs are ignored.
func WithID(id string) Option {
	return func(m *Machine) {
		if id != "" {
			m.id = id
		}
	}
}

// WithLogger sets the logger used for stack changes. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithObserver registers an observer for lifecycle hook events.
// May be given more than once; observers are notified in registration order.
func WithObserver(o Observer) Option {
	return func(m *Machine) {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
}

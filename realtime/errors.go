package realtime

import (
	"errors"
	"fmt"
)

var (
	ErrQueueFull      = errors.New("realtime: command queue full")
	ErrStopped        = errors.New("realtime: runner stopped")
	ErrAlreadyStarted = errors.New("realtime: runner already started")
	ErrRunning        = errors.New("realtime: step called while loop is running")
)

// TickPanicError reports a panic recovered while processing a tick.
type TickPanicError struct {
	Tick  uint64
	Value any
}

func (e *TickPanicError) Error() string {
	return fmt.Sprintf("realtime: panic in tick %d: %v", e.Tick, e.Value)
}

func IsTickPanic(err error) bool {
	var e *TickPanicError
	return errors.As(err, &e)
}

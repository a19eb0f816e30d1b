package statestack

import (
	"errors"
	"fmt"
)

// ErrPreconditionViolation is wrapped by every error caused by caller misuse of a Machine.
var ErrPreconditionViolation = errors.New("statestack: precondition violation")

var (
	errNilState          = errors.New("state is nil")
	errAlreadyOnStack    = errors.New("state is already on this machine's stack")
	errAttachedElsewhere = errors.New("state is attached to another machine")
)

// PreconditionError reports a rejected stack operation. No lifecycle hook fires
// for the rejected state.
type PreconditionError struct {
	Op     string
	State  string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("statestack: %s %s: %s", e.Op, e.State, e.Reason)
}

// Unwrap lets errors.Is match ErrPreconditionViolation.
func (e *PreconditionError) Unwrap() error {
	return ErrPreconditionViolation
}

func newPreconditionError(op string, s State, reason error) *PreconditionError {
	return &PreconditionError{
		Op:     op,
		State:  StateName(s),
		Reason: reason.Error(),
	}
}

func IsPreconditionViolation(err error) bool {
	return errors.Is(err, ErrPreconditionViolation)
}

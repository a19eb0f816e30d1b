package datastore

import (
	"errors"
	"fmt"
)

var (
	ErrKeyNotFound  = errors.New("datastore: key not found")
	ErrTypeMismatch = errors.New("datastore: type mismatch")
)

// TypeMismatchError reports a Get whose type parameter does not match the
// stored value.
type TypeMismatchError struct {
	Key  string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("datastore: key %q holds %s, not %s", e.Key, e.Got, e.Want)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

package fsm

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownState      = errors.New("unknown state")
	ErrStepLimitExceeded = errors.New("step limit exceeded")
)

// UnknownStateError is returned when the registry has no factory for the
// requested identifier.
type UnknownStateError struct {
	ID StateID
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state '%s'", e.ID)
}

func (e *UnknownStateError) Unwrap() error {
	return ErrUnknownState
}

func IsUnknownStateError(err error) bool {
	var e *UnknownStateError
	return errors.As(err, &e)
}

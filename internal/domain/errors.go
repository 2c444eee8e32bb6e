package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation signals a malformed or out-of-range request field.
	ErrValidation = errors.New("validation failed")
	// ErrUpstream signals a Drive call failure or timeout.
	ErrUpstream = errors.New("upstream error")
	// ErrNotFound signals a missing file.
	ErrNotFound = errors.New("not found")
)

// PassError wraps ErrUpstream with the index of the retrieval pass that failed.
type PassError struct {
	Pass int
	Err  error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("%s: pass %d: %v", ErrUpstream.Error(), e.Pass, e.Err)
}

func (e *PassError) Unwrap() error { return ErrUpstream }

// NewPassError creates an upstream error attributed to a pass.
func NewPassError(pass int, err error) error {
	return &PassError{Pass: pass, Err: err}
}

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutCode indicates a package carries a code outside
	// the fixed SWM/RUN/WLK set.
	ErrUnknownWorkoutCode = errors.New("unknown workout code")

	// ErrInvalidArity indicates the number of raw values does not match
	// the constructor of the selected workout kind.
	ErrInvalidArity = errors.New("invalid number of package values")
)

// UnknownCodeError carries the rejected code. It matches
// ErrUnknownWorkoutCode under errors.Is.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownWorkoutCode, e.Code)
}

func (e *UnknownCodeError) Unwrap() error {
	return ErrUnknownWorkoutCode
}

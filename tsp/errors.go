package tsp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every construction-time validation failure.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrTooFewPoints is returned when fewer than two visitables (start + end) are given.
	ErrTooFewPoints = errors.New("tsp: at least two visitables (start and end) are required")

	// ErrFixedIndexOutOfRange is returned when a fixed-order index is outside [0, N).
	ErrFixedIndexOutOfRange = errors.New("tsp: fixed-order index out of range")

	// ErrIndexOutOfRange is returned when a tour references a visitable that does not exist.
	ErrIndexOutOfRange = errors.New("tsp: visitable index out of range")

	// ErrNonFinitePoint is returned when an entry or exit coordinate is NaN or ±Inf.
	ErrNonFinitePoint = errors.New("tsp: non-finite coordinate")

	// ErrBadOptions is returned for malformed Options (negative Eps, negative MaxSegment).
	ErrBadOptions = errors.New("tsp: invalid options")
)

// InvalidInputError describes a rejected construction argument.
// It unwraps to both ErrInvalidInput and the specific sentinel in Err,
// so errors.Is works for either.
type InvalidInputError struct {
	Field string // "points", "fixed" or "options"
	Index int    // offending position in the argument, -1 when not applicable
	Err   error  // specific sentinel
}

// Error implements error.
func (e *InvalidInputError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d]: %v", e.Field, e.Index, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap exposes ErrInvalidInput and the specific sentinel to errors.Is/As.
func (e *InvalidInputError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Err}
}

func invalid(field string, index int, err error) error {
	return &InvalidInputError{Field: field, Index: index, Err: err}
}

package sizing

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a query or table the engine cannot evaluate.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoAdequateSize indicates that no size in the table meets the required capacity,
// even after conservative extrapolation.
var ErrNoAdequateSize = errors.New("no adequate size found")

// InputError describes which value of a query or table was rejected.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, reason string) *InputError {
	return &InputError{Field: field, Reason: reason}
}

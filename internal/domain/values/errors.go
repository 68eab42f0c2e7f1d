package values

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind shared by every validation failure raised
// while constructing values or configuring a builder.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError describes a rejected input value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

// NewValidationError creates a new validation error.
func NewValidationError(field, value, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

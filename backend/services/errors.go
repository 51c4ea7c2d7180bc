package services

import (
	"errors"
	"fmt"
)

// ErrAlreadyCompleted is the idempotency guard: completing a category that
// is already complete is a benign no-op, not a hard failure.
var ErrAlreadyCompleted = errors.New("category already completed")

// ValidationError rejects a request before any state is mutated.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

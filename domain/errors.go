package domain

import (
	"errors"
	"fmt"
)

// ErrInternal is what callers see when something unexpected happened.
// The original error is logged before this is returned.
var ErrInternal = errors.New("internal server error")

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func NewUnauthorizedError(format string, args ...interface{}) *UnauthorizedError {
	return &UnauthorizedError{Message: fmt.Sprintf(format, args...)}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsUnauthorized(err error) bool {
	var ue *UnauthorizedError
	return errors.As(err, &ue)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// Classify returns err unchanged when it is one of the recognized kinds,
// anything else collapses to ErrInternal so driver details never reach
// the caller.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if IsValidation(err) || IsUnauthorized(err) || IsNotFound(err) {
		return err
	}
	return ErrInternal
}

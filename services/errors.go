package services

import "fmt"

// ValidationError means the request was malformed or inconsistent: unknown
// player id, requester not a participant, winner not a participant, requester
// without a category, duplicate registration.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError means a referenced player, category, challenge or match id
// does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// InternalError means a downstream write failed after earlier writes had
// already been applied; any compensation has already run by the time the
// caller sees it.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error { return e.Err }

func NewInternalError(message string, err error) *InternalError {
	return &InternalError{Message: message, Err: err}
}

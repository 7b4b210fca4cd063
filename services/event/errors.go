package event

import (
	"errors"
	"fmt"
)

const (
	CodeNotFound     = "eventNotFound"
	CodeInvalidInput = "invalidInput"
	CodeConflict     = "slotConflict"
	CodeForbidden    = "forbidden"
)

// Error is a coded event-service failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(eventID string) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("event %q not found", eventID)}
}

func NewInvalidInputError(msg string) error {
	return &Error{Code: CodeInvalidInput, Message: msg}
}

func NewConflictError(msg string) error {
	return &Error{Code: CodeConflict, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &Error{Code: CodeForbidden, Message: msg}
}

func hasCode(err error, code string) bool {
	var ee *Error
	return errors.As(err, &ee) && ee.Code == code
}

func IsNotFound(err error) bool     { return hasCode(err, CodeNotFound) }
func IsInvalidInput(err error) bool { return hasCode(err, CodeInvalidInput) }
func IsConflict(err error) bool     { return hasCode(err, CodeConflict) }
func IsForbidden(err error) bool    { return hasCode(err, CodeForbidden) }

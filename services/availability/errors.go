package availability

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidQuery = "invalidQuery"
	CodeTeamNotFound = "teamNotFound"
)

// Error is a coded availability failure, reported to the caller once and
// never retried.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidQueryError(msg string) error {
	return &Error{Code: CodeInvalidQuery, Message: msg}
}

func NewTeamNotFoundError(teamID string) error {
	return &Error{Code: CodeTeamNotFound, Message: fmt.Sprintf("team %q not found", teamID)}
}

func hasCode(err error, code string) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}

// IsInvalidQuery reports whether err is an invalid-query rejection.
func IsInvalidQuery(err error) bool { return hasCode(err, CodeInvalidQuery) }

// IsTeamNotFound reports whether err is an unknown-team rejection.
func IsTeamNotFound(err error) bool { return hasCode(err, CodeTeamNotFound) }

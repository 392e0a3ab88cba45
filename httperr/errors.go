package httperr

import (
	"net/http"

	"github.com/pkg/errors"
)

// Error carries the HTTP status an operation failure maps to. Services
// return these; controllers translate them exactly once at the boundary.
type Error struct {
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// ValidationFrom wraps a validator error map so the field-level reasons
// reach the client unchanged.
func ValidationFrom(err error) *Error {
	return &Error{Status: http.StatusBadRequest, Message: err.Error(), Cause: err}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

// Store marks a connectivity or internal storage failure. The original
// cause stays wrapped for the logs, never for the client.
func Store(err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: "storage unavailable",
		Cause:   errors.Wrap(err, "store round-trip failed"),
	}
}

// Status resolves the HTTP status for any error returned by a service.
// Unclassified errors are treated as internal failures.
func Status(err error) int {
	var he *Error
	if errors.As(err, &he) {
		return he.Status
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	var he *Error
	return errors.As(err, &he) && he.Status == http.StatusNotFound
}

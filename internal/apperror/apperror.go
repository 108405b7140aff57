// Package apperror defines the application error taxonomy and its
// mapping to HTTP status codes.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes an application error.
type Kind int

const (
	Internal Kind = iota
	// Validation is malformed input: password mismatch, empty required field.
	Validation
	// Conflict is a uniqueness collision, e.g. a taken email at registration.
	Conflict
	// Auth is bad credentials at login. Deliberately generic: the same
	// error covers unknown email and wrong password.
	Auth
	// Unauthenticated means the action requires a logged-in caller.
	Unauthenticated
	// NotFound covers both a missing resource and one the caller does not
	// own; the two are indistinguishable on purpose.
	NotFound
	// External is a failure of an outside collaborator (weather API).
	External
)

// Error is the error type services return across the handler boundary.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode maps the error kind to an HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case Auth, Unauthenticated:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case External:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap keeps the underlying cause for logs while Message stays user-facing.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// IsKind reports whether err (or anything it wraps) is an *Error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// From extracts an *Error from err, or wraps err as Internal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Wrap(Internal, "internal error", err)
}

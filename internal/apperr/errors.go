// Package apperr defines the error kinds surfaced to API callers. Callers
// match kinds with errors.Is; the public message travels in *Error.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation error")
)

// Error pairs a kind with a short message that is safe to show to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Kind }

func New(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Unauthorized(msg string) *Error { return New(ErrUnauthorized, msg) }

func NotFound(msg string) *Error { return New(ErrNotFound, msg) }

func Conflict(msg string) *Error { return New(ErrConflict, msg) }

func Validation(msg string) *Error { return New(ErrValidation, msg) }

// Message returns the client-facing message of err, or fallback when err
// carries none.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

// Package apperr defines the error type returned across package boundaries
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error. Message may be a format template which is
// filled in with Fmt.
type Error struct {
	Cause    error
	Message  string
	template string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was derived from the same error value as e.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.tmpl() == e.tmpl()
}

func (e *Error) tmpl() string {
	if e.template != "" {
		return e.template
	}

	return e.Message
}

// Fmt returns a copy of e with its message template formatted using v.
func (e *Error) Fmt(v ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, v...),
		Cause:    e.Cause,
		template: e.tmpl(),
	}
}

// Wrap returns a copy of e that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    err,
		template: e.tmpl(),
	}
}

// Package errors defines the application error catalogue and how each entry maps onto HTTP.
package errors

import (
	"net/http"

	"swiftauth/internal/errors"
)

// Kind classifies an error independently of the transport that reports it.
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindConflict          Kind = "CONFLICT"
	KindInvalidCredential Kind = "INVALID_CREDENTIAL"
	KindForbidden         Kind = "FORBIDDEN"
	KindInvalidInput      Kind = "INVALID_INPUT"
	KindUnexpected        Kind = "UNEXPECTED"
)

// AppError is what the error middleware renders. Message is safe to show a client; Details may
// carry context and is omitted for 5xx responses.
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a catalogue entry. Entries are shared values; use WithDetails to annotate one.
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

func define(kind Kind, httpCode int, errorCode, message string) *BaseError {
	return &BaseError{kind: kind, httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) Kind() Kind        { return e.kind }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy that still matches e under errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	annotated := *e
	annotated.details = details

	return &annotated
}

func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

// KindOf returns the kind of the first AppError in err's chain, or KindUnexpected.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindUnexpected
}

// DatabaseExecuteError wraps a driver failure. The driver text stays in the log, never in the
// response.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) Kind() Kind        { return KindUnexpected }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }

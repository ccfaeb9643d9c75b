// Package domain holds the building blocks shared by every aggregate: the
// typed error taxonomy and page requests.
package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain failure. The HTTP layer maps each kind to a
// status code.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindValidation
	KindForbidden
	KindBadRequest
	KindConflict
)

// String returns a lowercase name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindForbidden:
		return "forbidden"
	case KindBadRequest:
		return "bad_request"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a typed, non-retryable domain failure.
//
// Package-level sentinels are declared with NewError and concrete failures are
// derived from them with Withf, so errors.Is(err, sentinel) holds for any
// message because equality is decided by Code.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

// NewError declares a sentinel error of the given kind.
func NewError(kind ErrorKind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// Is reports whether target is a domain error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Withf returns a copy of e carrying a formatted message.
func (e *Error) Withf(format string, args ...any) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first domain error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

// NewValidationError returns an ad-hoc validation failure.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Code: "VALIDATION_FAILED", Message: message}
}

// Package apperr defines the fault type shared by workflows and the HTTP
// boundary. Every anticipated failure carries a stable code that callers
// and tests assert on; anything else is treated as an internal fault.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a fault for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindBusiness
	KindForbidden
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindBusiness:
		return "business"
	case KindForbidden:
		return "forbidden"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "internal"
	}
}

// Error is an anticipated fault with a stable code and a client-safe message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Status  int // optional HTTP status override for business faults
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus returns the status code the boundary should respond with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindBusiness:
		if e.Status != 0 {
			return e.Status
		}
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Business builds a client-error fault.
func Business(code, message string) *Error {
	return &Error{Kind: KindBusiness, Code: code, Message: message}
}

// NotFound builds a business fault answered with 404.
func NotFound(code, message string) *Error {
	return &Error{Kind: KindBusiness, Code: code, Message: message, Status: http.StatusNotFound}
}

// Conflict builds a business fault answered with 409.
func Conflict(code, message string) *Error {
	return &Error{Kind: KindBusiness, Code: code, Message: message, Status: http.StatusConflict}
}

func Forbidden(code, message string) *Error {
	return &Error{Kind: KindForbidden, Code: code, Message: message}
}

func Unauthenticated(code, message string) *Error {
	return &Error{Kind: KindUnauthenticated, Code: code, Message: message}
}

// Internal wraps an unexpected cause. The cause is for server-side logs only.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: MessageInternal, Err: err}
}

// From converts any error into an *Error. Unknown errors become internal faults.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}

// HasCode reports whether err is an *Error carrying code.
func HasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

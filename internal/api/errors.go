package api

import (
	"errors"
	"fmt"
)

// Kind classifies an Error so callers can branch without parsing messages.
type Kind int

const (
	// KindTransport covers non-2xx responses and network failures.
	KindTransport Kind = iota
	// KindValidation marks input rejected before any request is issued.
	KindValidation
	// KindNotFound marks a fragment that names no registered route.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not-found"
	default:
		return "transport"
	}
}

// Error is the single error shape surfaced to pages. Message is always
// suitable for display.
type Error struct {
	Kind    Kind
	Message string
	Status  int // HTTP status when the server answered, zero otherwise
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Validation builds a client-side validation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound builds the error used for unregistered routes.
func NotFound(route string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("The page %q doesn't exist.", route)}
}

func transportError(status int, message string, cause error) *Error {
	return &Error{Kind: KindTransport, Status: status, Message: message, Err: cause}
}

// KindOf reports the kind of err. Errors that did not come from this package
// are treated as transport failures.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindTransport
}

// MessageOf returns the display message for any error.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An unknown error occurred"
}

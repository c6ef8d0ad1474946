// Package apierr provides the uniform error shape for every failure the
// Plateful client can surface, regardless of whether it originated from the
// network, an HTTP error status, or an application-level error embedded in an
// otherwise successful response body.
package apierr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind represents the category of a normalized error.
type Kind string

const (
	// KindNetwork indicates a transport failure or a non-2xx status without
	// a structured error payload.
	KindNetwork Kind = "network"
	// KindTimeout indicates the call exceeded the configured client timeout.
	KindTimeout Kind = "timeout"
	// KindUnauthorized indicates the backend rejected the credential (HTTP 401).
	KindUnauthorized Kind = "unauthorized"
	// KindApplication indicates a business error reported by the backend,
	// possibly inside an HTTP 200 response.
	KindApplication Kind = "application"
	// KindMalformed indicates the backend violated the response contract.
	KindMalformed Kind = "malformed"
)

// Error is the normalized error returned by every client operation.
type Error struct {
	Kind       Kind
	Message    string
	HTTPStatus int    // 0 when no HTTP response was received
	Raw        []byte // raw response body, when one was available
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NetworkError creates a network-level error.
func NetworkError(message string, status int, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: message, HTTPStatus: status, Cause: cause}
}

// TimeoutError creates a timeout error.
func TimeoutError(cause error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: "request timed out, the server may still be processing your request",
		Cause:   cause,
	}
}

// UnauthorizedError creates an unauthorized error.
func UnauthorizedError(message string) *Error {
	if message == "" {
		message = "unauthorized"
	}
	return &Error{Kind: KindUnauthorized, Message: message, HTTPStatus: 401}
}

// ApplicationError creates a business error with a display-ready message.
func ApplicationError(message string, status int) *Error {
	return &Error{Kind: KindApplication, Message: message, HTTPStatus: status}
}

// MalformedError creates a contract-violation error.
func MalformedError(message string, status int) *Error {
	return &Error{Kind: KindMalformed, Message: message, HTTPStatus: status}
}

// As extracts a normalized *Error from err, returning (nil, false) if err is
// not one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err, or "" if err is not a normalized error.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return ""
}

// IsDuplicate reports whether err is the backend's "already exists" business
// error. The backend signals duplicates only through the message text, so this
// predicate sniffs for "exist"/"duplicate" case-insensitively. Call sites must
// use this predicate rather than matching messages themselves, so the check
// can be swapped for a structured error code once the backend grows one.
func IsDuplicate(err error) bool {
	e, ok := As(err)
	if !ok || e.Kind != KindApplication {
		return false
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "exist") || strings.Contains(msg, "duplicate")
}

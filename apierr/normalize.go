package apierr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Normalize classifies a failed call into a normalized *Error. transportErr is
// the error returned by the HTTP round trip (nil when a response was
// received), status the HTTP status code (0 when absent), body the raw
// response body (nil when absent).
//
// Classification applies in order, first match wins:
//  1. timeout-shaped transport error -> Timeout
//  2. HTTP 401 -> Unauthorized
//  3. decodable JSON object carrying an "error" field -> Application
//  4. any other transport error or non-2xx status -> Network
//  5. otherwise -> Malformed
//
// Normalize is pure: it reads nothing but its arguments.
func Normalize(transportErr error, status int, body []byte) *Error {
	if transportErr != nil && isTimeout(transportErr) {
		return TimeoutError(transportErr)
	}

	if status == http.StatusUnauthorized {
		msg, _ := EmbeddedError(body)
		return UnauthorizedError(msg)
	}

	if msg, ok := EmbeddedError(body); ok {
		e := ApplicationError(msg, status)
		e.Raw = body
		return e
	}

	if transportErr != nil {
		return NetworkError("request failed", 0, transportErr)
	}

	if status < 200 || status >= 300 {
		e := NetworkError(fmt.Sprintf("request failed with status %d %s", status, http.StatusText(status)), status, nil)
		e.Raw = body
		return e
	}

	e := MalformedError("response did not match any expected shape", status)
	e.Raw = body
	return e
}

// EmbeddedError reports whether body is a JSON object carrying an "error"
// field, returning the embedded message. An error field that is present but
// empty still counts as a failure; the message falls back to a generic one.
func EmbeddedError(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}

	var payload struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &payload); err != nil || payload.Error == nil {
		return "", false
	}

	msg := *payload.Error
	if msg == "" {
		msg = "an error occurred"
	}
	return msg, true
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

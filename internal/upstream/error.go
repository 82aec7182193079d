// Package upstream classifies failures at the outbound-call boundary so tool
// handlers can surface a structured error instead of a raw exception.
package upstream

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes the failure classes of an upstream call.
type ErrorKind string

const (
	// KindTransport covers DNS, connect, TLS, and timeout failures — the
	// request never produced an HTTP response.
	KindTransport ErrorKind = "transport"

	// KindStatus covers responses with a non-success HTTP status code.
	KindStatus ErrorKind = "status"

	// KindRead covers failures reading the response body.
	KindRead ErrorKind = "read"
)

// Error is a classified upstream failure.
type Error struct {
	Kind   ErrorKind
	Status int    // HTTP status code, set for KindStatus
	Body   string // raw response body, set for KindStatus
	Err    error  // underlying cause, set for KindTransport and KindRead
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		if e.Body != "" {
			return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Body)
		}
		return fmt.Sprintf("upstream returned %d", e.Status)
	case KindRead:
		return fmt.Sprintf("failed to read upstream response: %v", e.Err)
	default:
		return fmt.Sprintf("upstream request failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// TransportError wraps a failure that occurred before any HTTP response.
func TransportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// StatusError wraps a non-success HTTP response.
func StatusError(status int, body []byte) *Error {
	return &Error{Kind: KindStatus, Status: status, Body: string(body)}
}

// ReadError wraps a failure reading the response body.
func ReadError(err error) *Error {
	return &Error{Kind: KindRead, Err: err}
}

// KindOf returns the classification of err, or an empty kind when err is not
// an upstream error.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ""
}

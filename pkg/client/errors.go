package client

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying failed responses. Match with errors.Is.
var (
	// ErrUnauthorized means the server rejected the admin credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means the addressed resource does not exist, typically a
	// suggestion that was already resolved.
	ErrNotFound = errors.New("not found")
	// ErrInternal means the server failed (5xx).
	ErrInternal = errors.New("internal server error")
	// ErrUnknown covers any other non-2xx response.
	ErrUnknown = errors.New("unexpected response")
)

// StatusError carries the HTTP status and server-reported message alongside
// the classifying sentinel.
type StatusError struct {
	Code    int
	Message string
	err     error
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

func (e *StatusError) Unwrap() error { return e.err }

func classify(code int) error {
	switch {
	case code == 401:
		return ErrUnauthorized
	case code == 404:
		return ErrNotFound
	case code >= 500:
		return ErrInternal
	default:
		return ErrUnknown
	}
}

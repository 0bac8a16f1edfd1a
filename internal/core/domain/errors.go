package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an upstream catalog failure.
type ErrorKind string

const (
	ErrAuthFailed  ErrorKind = "auth_failed"
	ErrRateLimited ErrorKind = "rate_limited"
	ErrNotFound    ErrorKind = "not_found"
	ErrNetwork     ErrorKind = "network_error"
	ErrTimeout     ErrorKind = "timeout"
	ErrValidation  ErrorKind = "validation_error"
	ErrServer      ErrorKind = "server_error"
	ErrUnknown     ErrorKind = "unknown"
)

// CatalogError is a classified upstream failure. It carries enough context
// (endpoint, raw body) for the caller to correct its input or report the
// failure; it is never silently swallowed except when a listing call
// degrades to the fallback catalog.
type CatalogError struct {
	Kind       ErrorKind
	HTTPStatus int
	Endpoint   string
	Body       string
	Err        error
}

func (e *CatalogError) Error() string {
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("catalog %s (http %d) on %s: %s", e.Kind, e.HTTPStatus, e.Endpoint, e.message())
	}
	return fmt.Sprintf("catalog %s on %s: %s", e.Kind, e.Endpoint, e.message())
}

func (e *CatalogError) message() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Body
}

func (e *CatalogError) Unwrap() error { return e.Err }

// Retryable reports whether the transient-failure retry policy applies.
// Auth, validation and not-found failures are terminal.
func (e *CatalogError) Retryable() bool {
	switch e.Kind {
	case ErrRateLimited, ErrServer, ErrNetwork, ErrTimeout:
		return true
	}
	return false
}

// KindOf extracts the ErrorKind from err, or ErrUnknown if err is not a
// CatalogError.
func KindOf(err error) ErrorKind {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ErrUnknown
}

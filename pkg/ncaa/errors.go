package ncaa

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that every source in the provider chain was
// exhausted without yielding a usable bracket.
var ErrNotFound = errors.New("tournament not found")

// NetworkError is a transport-level failure (DNS, dial, timeout). It is
// not retried here; the provider chain advances to its next source.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error for %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx response whose status is not a client error.
// Client errors (4xx) never surface as APIError: pre-announcement the
// bracket endpoints legitimately do not exist, so the fetch layer
// downgrades them to an empty result.
type APIError struct {
	URL        string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error for %s: status %d", e.URL, e.StatusCode)
}

// ParseError is a malformed or unexpectedly shaped response body.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error for %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

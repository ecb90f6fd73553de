// Package shared contains common domain types and errors used across all
// domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// ErrSourceUnavailable indicates the remote standings source could not be
	// reached or answered with a non-success status.
	ErrSourceUnavailable = errors.New("standings source unavailable")

	// ErrMalformedSource indicates the standings document violated the
	// expected schema during parsing.
	ErrMalformedSource = errors.New("malformed standings document")

	// ErrNoData indicates a ranking was requested over an empty qualifying
	// set. This is an expected, user-facing outcome, not an operational error.
	ErrNoData = errors.New("no data for ranking")

	// ErrNotFound indicates a name lookup produced no match. Like ErrNoData
	// this is an expected outcome rendered as a friendly message.
	ErrNotFound = errors.New("member not found")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g. "standings", "ranking", "cache"
	Op      string // operation that failed, e.g. "Parse", "Refresh"
	Kind    error  // base error type for errors.Is() checking
	Message string // human-readable message
	Err     error  // underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// IsUserFacing reports whether the error is an expected outcome that should be
// rendered as a friendly message rather than logged as an operational failure.
func IsUserFacing(err error) bool {
	return errors.Is(err, ErrNoData) || errors.Is(err, ErrNotFound)
}

// IsOperational reports whether the error is an operational failure that the
// command layer should log before replying with a generic failure message.
func IsOperational(err error) bool {
	return errors.Is(err, ErrSourceUnavailable) || errors.Is(err, ErrMalformedSource)
}

// ABOUTME: Custom error types for the episode pipeline
// ABOUTME: Makes "source unavailable" and "item dropped" typed, testable states

package errors

import (
	"errors"
	"fmt"
)

// FetchError represents a network or HTTP failure reaching a source.
// Adapters return it from their boundary; the orchestrator degrades it
// to an empty episode list for that platform.
type FetchError struct {
	Platform   string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed for %s: status %d", e.Platform, e.StatusCode)
	}
	return fmt.Sprintf("fetch failed for %s: %v", e.Platform, e.Err)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError represents a malformed feed item. Only the offending item is
// dropped; the rest of the feed is still usable.
type ParseError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on %s: %s", e.Field, e.Reason)
}

// PersistenceError represents a cache write failure. The refresh result is
// still returned to the caller; the cache simply stays stale.
type PersistenceError struct {
	Key string
	Err error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistErr *PersistenceError
	return errors.As(err, &persistErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

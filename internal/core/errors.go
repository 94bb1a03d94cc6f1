package core

import (
	"errors"
	"fmt"
)

// Predefined sentinel errors for common cases.
var (
	// ErrInvalidFilename indicates an attachment path that is not valid UTF-8.
	ErrInvalidFilename = errors.New("could not UTF-8 decode this filename")

	// ErrInvalidTemplateValue indicates dynamic template data whose top level
	// is not a JSON object.
	ErrInvalidTemplateValue = errors.New("dynamic template data must be a JSON object")

	// ErrMissingDestination indicates a legacy mail with no recipients.
	ErrMissingDestination = errors.New("mail has no to addresses")
)

// EncodeError represents a failure to serialize structured data for the wire.
type EncodeError struct {
	// Cause is the underlying serialization error.
	Cause error
}

// Error implements the error interface.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode error: %v", e.Cause)
}

// Unwrap returns the underlying error.
func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// TooManyItemsError indicates a collection that exceeds a hard provider limit.
type TooManyItemsError struct {
	// Field is the name of the capped collection.
	Field string

	// Limit is the maximum number of entries allowed.
	Limit int

	// Count is the number of entries supplied.
	Count int
}

// Error implements the error interface.
func (e *TooManyItemsError) Error() string {
	return fmt.Sprintf("too many items in %s: %d exceeds limit of %d", e.Field, e.Count, e.Limit)
}

// Is implements error matching for errors.Is.
func (e *TooManyItemsError) Is(target error) bool {
	_, ok := target.(*TooManyItemsError)
	return ok
}

// NewEncodeError creates a new encode error wrapping cause.
func NewEncodeError(cause error) *EncodeError {
	return &EncodeError{Cause: cause}
}

// NewTooManyItemsError creates a new capped-collection error.
func NewTooManyItemsError(field string, limit, count int) *TooManyItemsError {
	return &TooManyItemsError{Field: field, Limit: limit, Count: count}
}

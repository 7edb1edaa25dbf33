// Package manifest contains pure functions for parsing CCI deployment manifests.
// This is part of the Functional Core - all functions are pure with no I/O.
package manifest

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrInvalidYAML is returned when the manifest text cannot be parsed.
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrMissingMetadata is returned when the manifest has no metadata section.
	ErrMissingMetadata = errors.New("manifest has no metadata")

	// ErrMissingName is returned when metadata has no usable name.
	ErrMissingName = errors.New("manifest metadata has no name")
)

// ParseError wraps errors with context about where parsing failed.
type ParseError struct {
	Field   string // e.g., "metadata.name"
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(field, message string, err error) *ParseError {
	return &ParseError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

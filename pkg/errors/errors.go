// Package errors provides custom error types for the boxoffice system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the boxoffice system
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a record already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformed indicates that a persisted document is missing its
	// expected top-level shape
	ErrMalformed = errors.New("malformed document")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with title %q not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// DuplicateError represents an error when a record with the same key
// already exists
type DuplicateError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with title %q already exists", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *DuplicateError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// NewDuplicateError creates a new DuplicateError
func NewDuplicateError(resource, id string) *DuplicateError {
	return &DuplicateError{Resource: resource, ID: id}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "delimited", "json", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// DocumentError represents a structured document whose top-level shape is
// missing or invalid (for example a document without a "movies" sequence)
type DocumentError struct {
	Path    string
	Message string
}

// Error implements the error interface
func (e *DocumentError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed document %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("malformed document: %s", e.Message)
}

// Is implements errors.Is support
func (e *DocumentError) Is(target error) bool {
	return target == ErrMalformed
}

// NewDocumentError creates a new DocumentError
func NewDocumentError(path, message string) *DocumentError {
	return &DocumentError{Path: path, Message: message}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsMalformed checks if an error indicates a malformed document
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

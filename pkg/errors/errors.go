// Package errors provides custom error types for the stepmap system.
// These errors enable programmatic error checking and keep the load
// boundary's degradation behavior observable in logs and HTTP responses.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the stepmap system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFramework indicates a framework outside the supported set
	ErrUnsupportedFramework = errors.New("unsupported framework")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")

	// ErrReadOnly indicates an attempt to modify a read-only resource
	ErrReadOnly = errors.New("read only")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// UnsupportedFrameworkError reports a framework identifier outside the
// supported set. Callers degrade to an empty catalog rather than failing,
// but the typed error keeps the diagnostic precise where it is logged.
type UnsupportedFrameworkError struct {
	Framework string
}

// Error implements the error interface
func (e *UnsupportedFrameworkError) Error() string {
	return fmt.Sprintf("framework %q is not supported", e.Framework)
}

// Is implements errors.Is support
func (e *UnsupportedFrameworkError) Is(target error) bool {
	return target == ErrUnsupportedFramework
}

// NewUnsupportedFrameworkError creates a new UnsupportedFrameworkError
func NewUnsupportedFrameworkError(framework string) *UnsupportedFrameworkError {
	return &UnsupportedFrameworkError{Framework: framework}
}

// LoadError represents a failure loading a step catalog from its source.
// Catalog loading degrades to an empty catalog; this error is logged at the
// load boundary and never propagates to the consolidation pipeline's caller.
type LoadError struct {
	Source string // "embedded", "files"
	Path   string
	Err    error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("loading %s catalog from %s: %v", e.Source, e.Path, e.Err)
	}
	return fmt.Sprintf("loading %s catalog: %v", e.Source, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError
func NewLoadError(source, path string, err error) *LoadError {
	return &LoadError{Source: source, Path: path, Err: err}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
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
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnsupportedFramework checks if an error is an unsupported framework error
func IsUnsupportedFramework(err error) bool {
	return errors.Is(err, ErrUnsupportedFramework)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Wrap helpers

// WrapValidation wraps an error as a validation failure for a field
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapLoad wraps an error as a catalog load failure
func WrapLoad(source, path string, err error) error {
	if err == nil {
		return nil
	}
	return &LoadError{Source: source, Path: path, Err: err}
}

// WrapParse wraps an error as a parse failure
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}

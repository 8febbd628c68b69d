// Package errors provides a lightweight structured error type (InjectError)
// for category-based classification in the CLI surface.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of an injection error for classification
type ErrorCategory string

const (
	// User-facing input and configuration errors
	CategoryInput  ErrorCategory = "input"
	CategoryConfig ErrorCategory = "config"

	// Asset resolution and rendering errors
	CategoryAsset ErrorCategory = "asset"

	// Revision lookup errors
	CategoryRevision ErrorCategory = "revision"

	// Runtime and infrastructure errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// InjectError is a structured error with category and context
type InjectError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for InjectError
type ContextFields map[string]any

// Error implements the error interface
func (e *InjectError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *InjectError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *InjectError) WithContext(key string, value any) *InjectError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new InjectError
func New(category ErrorCategory, severity ErrorSeverity, message string) *InjectError {
	return &InjectError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new InjectError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *InjectError {
	return &InjectError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// Package errors provides a lightweight structured error type (MDPagesError)
// for category-based classification in the build pipeline and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of an mdpages error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// External system integration errors
	CategoryGit        ErrorCategory = "git"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Build and processing errors
	CategoryBuild  ErrorCategory = "build"
	CategoryRender ErrorCategory = "render"

	// Runtime and infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// MDPagesError is a structured error with category, severity, and context
type MDPagesError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for MDPagesError
type ContextFields map[string]any

// Error implements the error interface
func (e *MDPagesError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *MDPagesError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *MDPagesError) WithContext(key string, value any) *MDPagesError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new MDPagesError
func New(category ErrorCategory, severity ErrorSeverity, message string) *MDPagesError {
	return &MDPagesError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new MDPagesError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *MDPagesError {
	return &MDPagesError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if me, ok := err.(*MDPagesError); ok {
		return me.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not an MDPagesError
func GetCategory(err error) ErrorCategory {
	if me, ok := err.(*MDPagesError); ok {
		return me.Category
	}
	return CategoryInternal
}

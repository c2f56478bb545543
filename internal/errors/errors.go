package errors

import (
	"fmt"
)

// MarkError is the structured error type for textmark.
// It provides context for error handling, logging, and user presentation.
type MarkError struct {
	// Code is the unique error code (e.g., "ERR_201_FILE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *MarkError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *MarkError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with MarkError.
func (e *MarkError) Is(target error) bool {
	if t, ok := target.(*MarkError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *MarkError) WithDetail(key, value string) *MarkError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *MarkError) WithSuggestion(suggestion string) *MarkError {
	e.Suggestion = suggestion
	return e
}

// New creates a new MarkError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *MarkError {
	return &MarkError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a MarkError from an existing error.
// The error's message becomes the MarkError message.
func Wrap(code string, err error) *MarkError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *MarkError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// IOError creates an I/O-related error.
func IOError(message string, cause error) *MarkError {
	return New(ErrCodeFileNotFound, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *MarkError {
	return New(ErrCodeInvalidInput, message, cause)
}

// PatternError creates an error for a term that failed to compile.
func PatternError(message string, cause error) *MarkError {
	return New(ErrCodeInvalidPattern, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *MarkError {
	return New(ErrCodeInternal, message, cause)
}

// GetCode extracts the error code from a MarkError.
// Returns empty string if not a MarkError.
func GetCode(err error) string {
	if me, ok := err.(*MarkError); ok {
		return me.Code
	}
	return ""
}

// GetCategory extracts the category from a MarkError.
// Returns empty string if not a MarkError.
func GetCategory(err error) Category {
	if me, ok := err.(*MarkError); ok {
		return me.Category
	}
	return ""
}

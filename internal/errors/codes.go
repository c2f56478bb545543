// Package errors provides structured error handling for textmark.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (file, stdin)
//   - 4XX: Validation errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file and stdin I/O errors.
	CategoryIO Category = "IO"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityError indicates the operation failed.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
	// SeverityInfo indicates informational only.
	SeverityInfo Severity = "INFO"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeFileNotFound   = "ERR_201_FILE_NOT_FOUND"
	ErrCodeFilePermission = "ERR_202_FILE_PERMISSION"
	ErrCodeFileTooLarge   = "ERR_203_FILE_TOO_LARGE"
	ErrCodeStdinRead      = "ERR_204_STDIN_READ"

	// Validation errors (400-499)
	ErrCodeInvalidInput   = "ERR_401_INVALID_INPUT"
	ErrCodeInvalidPattern = "ERR_402_INVALID_PATTERN"
	ErrCodeNoTerms        = "ERR_403_NO_TERMS"
	ErrCodeInvalidFormat  = "ERR_404_INVALID_FORMAT"

	// Internal errors (500-599)
	ErrCodeInternal     = "ERR_501_INTERNAL"
	ErrCodeRenderFailed = "ERR_502_RENDER_FAILED"
	ErrCodeWatchFailed  = "ERR_503_WATCH_FAILED"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Extract the leading digit of the numeric portion
	// (e.g., "1" from "ERR_101_CONFIG_NOT_FOUND").
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	// A missing config file degrades to defaults rather than failing.
	if code == ErrCodeConfigNotFound {
		return SeverityWarning
	}
	return SeverityError
}

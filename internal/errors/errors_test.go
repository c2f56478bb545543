package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkError_Unwrap_PreservesOriginalError(t *testing.T) {
	// Given: an original error
	originalErr := errors.New("original error")

	// When: wrapping with MarkError
	markErr := New(ErrCodeFileNotFound, "file not found: test.txt", originalErr)

	// Then: unwrapping returns original error
	require.NotNil(t, markErr)
	assert.Equal(t, originalErr, errors.Unwrap(markErr))
	assert.True(t, errors.Is(markErr, originalErr))
}

func TestMarkError_Error_ReturnsFormattedMessage(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		message  string
		expected string
	}{
		{
			name:     "config error",
			code:     ErrCodeConfigNotFound,
			message:  "config file not found",
			expected: "[ERR_101_CONFIG_NOT_FOUND] config file not found",
		},
		{
			name:     "file error",
			code:     ErrCodeFileNotFound,
			message:  "file.txt not found",
			expected: "[ERR_201_FILE_NOT_FOUND] file.txt not found",
		},
		{
			name:     "pattern error",
			code:     ErrCodeInvalidPattern,
			message:  "term does not compile",
			expected: "[ERR_402_INVALID_PATTERN] term does not compile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, nil)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestMarkError_Is_MatchesByCode(t *testing.T) {
	// Given: two errors with same code
	err1 := New(ErrCodeFileNotFound, "file A not found", nil)
	err2 := New(ErrCodeFileNotFound, "file B not found", nil)

	// Then: they match by code
	assert.True(t, errors.Is(err1, err2))
}

func TestMarkError_Is_DoesNotMatchDifferentCodes(t *testing.T) {
	// Given: two errors with different codes
	err1 := New(ErrCodeFileNotFound, "file not found", nil)
	err2 := New(ErrCodeConfigNotFound, "config not found", nil)

	// Then: they don't match
	assert.False(t, errors.Is(err1, err2))
}

func TestMarkError_WithDetails_AddsContext(t *testing.T) {
	// Given: a base error
	err := New(ErrCodeFileNotFound, "file not found", nil)

	// When: adding details
	err = err.WithDetail("path", "/foo/bar.txt")
	err = err.WithDetail("size", "1024")

	// Then: details are available
	assert.Equal(t, "/foo/bar.txt", err.Details["path"])
	assert.Equal(t, "1024", err.Details["size"])
}

func TestMarkError_WithSuggestion_AddsSuggestion(t *testing.T) {
	// Given: a pattern error
	err := New(ErrCodeInvalidPattern, "term does not compile", nil)

	// When: adding suggestion
	err = err.WithSuggestion("Quote the term or enable escaping")

	// Then: suggestion is available
	assert.Equal(t, "Quote the term or enable escaping", err.Suggestion)
}

func TestMarkError_CategoryFromCode(t *testing.T) {
	tests := []struct {
		code         string
		wantCategory Category
	}{
		{ErrCodeConfigNotFound, CategoryConfig},
		{ErrCodeConfigInvalid, CategoryConfig},
		{ErrCodeFileNotFound, CategoryIO},
		{ErrCodeFilePermission, CategoryIO},
		{ErrCodeStdinRead, CategoryIO},
		{ErrCodeInvalidInput, CategoryValidation},
		{ErrCodeInvalidPattern, CategoryValidation},
		{ErrCodeNoTerms, CategoryValidation},
		{ErrCodeInternal, CategoryInternal},
		{ErrCodeRenderFailed, CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code, "message", nil)
			assert.Equal(t, tt.wantCategory, err.Category)
		})
	}
}

func TestMarkError_SeverityFromCode(t *testing.T) {
	// Missing config degrades to defaults, so it is only a warning.
	assert.Equal(t, SeverityWarning, New(ErrCodeConfigNotFound, "m", nil).Severity)
	assert.Equal(t, SeverityError, New(ErrCodeFileNotFound, "m", nil).Severity)
	assert.Equal(t, SeverityError, New(ErrCodeInternal, "m", nil).Severity)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeInternal, nil))
}

func TestWrap_PreservesErrorChain(t *testing.T) {
	inner := errors.New("inner failure")
	wrapped := Wrap(ErrCodeFileNotFound, inner)

	require.NotNil(t, wrapped)
	assert.Equal(t, "inner failure", wrapped.Message)
	assert.True(t, errors.Is(wrapped, inner))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeNoTerms, GetCode(New(ErrCodeNoTerms, "m", nil)))
	assert.Equal(t, "", GetCode(errors.New("plain")))
	assert.Equal(t, "", GetCode(nil))
}

func TestGetCategory(t *testing.T) {
	assert.Equal(t, CategoryIO, GetCategory(New(ErrCodeFileNotFound, "m", nil)))
	assert.Equal(t, Category(""), GetCategory(errors.New("plain")))
}

func TestHelperConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *MarkError
		wantCode string
	}{
		{name: "config", err: ConfigError("bad yaml", nil), wantCode: ErrCodeConfigInvalid},
		{name: "io", err: IOError("missing", nil), wantCode: ErrCodeFileNotFound},
		{name: "validation", err: ValidationError("bad input", nil), wantCode: ErrCodeInvalidInput},
		{name: "pattern", err: PatternError("bad term", nil), wantCode: ErrCodeInvalidPattern},
		{name: "internal", err: InternalError("broken", nil), wantCode: ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

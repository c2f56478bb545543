package errors

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForCLI(t *testing.T) {
	err := New(ErrCodeFileNotFound, "notes.txt not found", nil).
		WithSuggestion("Check the path or pipe text on stdin")

	out := FormatForCLI(err)

	assert.Contains(t, out, "Error: notes.txt not found")
	assert.Contains(t, out, "Hint: Check the path or pipe text on stdin")
	assert.Contains(t, out, "Code: ERR_201_FILE_NOT_FOUND")
}

func TestFormatForCLI_PlainError(t *testing.T) {
	out := FormatForCLI(errors.New("something broke"))

	assert.Contains(t, out, "Error: something broke")
	assert.Contains(t, out, "Code: ERR_501_INTERNAL")
}

func TestFormatForCLI_Nil(t *testing.T) {
	assert.Equal(t, "", FormatForCLI(nil))
}

func TestFormatJSON(t *testing.T) {
	inner := errors.New("open: permission denied")
	err := Wrap(ErrCodeFilePermission, inner).WithDetail("path", "/etc/notes")

	data, jerr := FormatJSON(err)
	require.NoError(t, jerr)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "ERR_202_FILE_PERMISSION", decoded["code"])
	assert.Equal(t, "IO", decoded["category"])
	assert.Equal(t, "open: permission denied", decoded["cause"])

	details, ok := decoded["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/etc/notes", details["path"])
}

func TestFormatForLog(t *testing.T) {
	err := New(ErrCodeInvalidPattern, "bad term", errors.New("missing closing ]")).
		WithDetail("term", "[broken")

	attrs := FormatForLog(err)

	assert.Equal(t, ErrCodeInvalidPattern, attrs["error_code"])
	assert.Equal(t, "bad term", attrs["message"])
	assert.Equal(t, "VALIDATION", attrs["category"])
	assert.Equal(t, "missing closing ]", attrs["cause"])
	assert.Equal(t, "[broken", attrs["detail_term"])
}

func TestFormatForLog_PlainError(t *testing.T) {
	attrs := FormatForLog(errors.New("plain"))
	assert.Equal(t, map[string]any{"error": "plain"}, attrs)
}

func TestFormatForLog_Nil(t *testing.T) {
	assert.Nil(t, FormatForLog(nil))
}

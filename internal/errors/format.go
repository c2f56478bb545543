package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatForCLI formats an error for CLI output.
// Uses a concise format suitable for terminal display.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	me, ok := err.(*MarkError)
	if !ok {
		// Wrap standard error
		me = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder

	// Error message with code
	sb.WriteString(fmt.Sprintf("Error: %s\n", me.Message))

	// Suggestion if available
	if me.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", me.Suggestion))
	}

	// Code reference
	sb.WriteString(fmt.Sprintf("  Code: %s\n", me.Code))

	return sb.String()
}

// jsonError is the JSON representation of an error.
type jsonError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Category   string            `json:"category"`
	Severity   string            `json:"severity"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	Cause      string            `json:"cause,omitempty"`
}

// FormatJSON returns a JSON representation of the error.
// Suitable for machine consumption and structured logging.
func FormatJSON(err error) ([]byte, error) {
	if err == nil {
		return json.Marshal(nil)
	}

	me, ok := err.(*MarkError)
	if !ok {
		// Wrap standard error
		me = Wrap(ErrCodeInternal, err)
	}

	je := jsonError{
		Code:       me.Code,
		Message:    me.Message,
		Category:   string(me.Category),
		Severity:   string(me.Severity),
		Details:    me.Details,
		Suggestion: me.Suggestion,
	}

	if me.Cause != nil {
		je.Cause = me.Cause.Error()
	}

	return json.Marshal(je)
}

// FormatForLog formats an error for structured logging.
// Returns key-value pairs suitable for slog attributes.
func FormatForLog(err error) map[string]any {
	if err == nil {
		return nil
	}

	me, ok := err.(*MarkError)
	if !ok {
		return map[string]any{
			"error": err.Error(),
		}
	}

	result := map[string]any{
		"error_code": me.Code,
		"message":    me.Message,
		"category":   string(me.Category),
		"severity":   string(me.Severity),
	}

	if me.Cause != nil {
		result["cause"] = me.Cause.Error()
	}

	if me.Suggestion != "" {
		result["suggestion"] = me.Suggestion
	}

	for k, v := range me.Details {
		result["detail_"+k] = v
	}

	return result
}

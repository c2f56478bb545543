// Package output provides consistent CLI status output for textmark commands.
package output

import (
	"fmt"
	"io"
	"strings"
)

// Writer provides formatted output for CLI.
type Writer struct {
	out io.Writer
}

// New creates a new output Writer.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Status prints a status message with an icon.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
	}
}

// Statusf prints a formatted status message with an icon.
func (w *Writer) Statusf(icon, format string, args ...any) {
	w.Status(icon, fmt.Sprintf(format, args...))
}

// Success prints a success message with checkmark.
func (w *Writer) Success(msg string) {
	w.Status("✅", msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.Status("⚠️ ", msg)
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (w *Writer) Error(msg string) {
	w.Status("❌", msg)
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Code prints a code block with indentation.
func (w *Writer) Code(content string) {
	_, _ = fmt.Fprintln(w.out)
	for _, line := range strings.Split(content, "\n") {
		_, _ = fmt.Fprintf(w.out, "  %s\n", line)
	}
	_, _ = fmt.Fprintln(w.out)
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

// Package render turns a sliced partition into presentable output: ANSI
// terminal text with highlighted matches, an HTML fragment, plain marker
// text, or JSON. Renderers consume the spans produced by pkg/textslice and
// never re-scan the text themselves.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/textmark/textmark/pkg/textslice"
)

// Format identifies an output format.
type Format string

const (
	// FormatAuto selects ANSI on interactive terminals and marker text
	// everywhere else.
	FormatAuto Format = "auto"

	// FormatANSI renders matches with terminal styling.
	FormatANSI Format = "ansi"

	// FormatHTML renders an HTML fragment with matches wrapped in a tag.
	FormatHTML Format = "html"

	// FormatMarker renders plain text with matches wrapped in » and «.
	FormatMarker Format = "marker"

	// FormatJSON renders the partition as a JSON array of spans.
	FormatJSON Format = "json"
)

// ParseFormat converts a flag or configuration value into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "ansi", "term", "terminal":
		return FormatANSI, nil
	case "html":
		return FormatHTML, nil
	case "marker", "text", "plain":
		return FormatMarker, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want auto, ansi, html, marker, or json)", s)
	}
}

// Renderer writes a text and its partition in one output format.
type Renderer interface {
	Render(text string, spans []textslice.Span) error
}

// Config configures a Renderer.
type Config struct {
	Output  io.Writer
	Format  Format
	MarkTag string // HTML tag for matched spans, "mark" when empty
	Context int    // bytes of unmatched text kept around matches, 0 keeps all
	NoColor bool
}

// ConfigOption is a function that modifies Config.
type ConfigOption func(*Config)

// WithFormat sets the output format.
func WithFormat(f Format) ConfigOption {
	return func(c *Config) {
		c.Format = f
	}
}

// WithMarkTag sets the HTML tag wrapped around matched spans.
func WithMarkTag(tag string) ConfigOption {
	return func(c *Config) {
		c.MarkTag = tag
	}
}

// WithContext sets how many bytes of unmatched text are kept on each side of
// a match. Zero disables clipping.
func WithContext(n int) ConfigOption {
	return func(c *Config) {
		c.Context = n
	}
}

// WithNoColor disables color output.
func WithNoColor(noColor bool) ConfigOption {
	return func(c *Config) {
		c.NoColor = noColor
	}
}

// NewConfig creates a new Config with the given output and options.
func NewConfig(output io.Writer, opts ...ConfigOption) Config {
	cfg := Config{
		Output:  output,
		Format:  FormatAuto,
		MarkTag: "mark",
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// NewRenderer creates the renderer for the configured format, resolving
// FormatAuto against the output and environment.
func NewRenderer(cfg Config) Renderer {
	tag := cfg.MarkTag
	if tag == "" {
		tag = "mark"
	}

	switch ResolveFormat(cfg.Format, cfg.Output) {
	case FormatANSI:
		return &ansiRenderer{out: cfg.Output, styles: GetStyles(cfg.NoColor), context: cfg.Context}
	case FormatHTML:
		return &htmlRenderer{out: cfg.Output, tag: tag, context: cfg.Context}
	case FormatJSON:
		return &jsonRenderer{out: cfg.Output}
	default:
		return &markerRenderer{out: cfg.Output, context: cfg.Context}
	}
}

// ResolveFormat maps FormatAuto to a concrete format for the given output:
// ANSI for interactive terminals, marker text for pipes, files, and CI
// environments. Explicit formats pass through unchanged.
func ResolveFormat(f Format, w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if IsTTY(w) && !DetectCI() {
		return FormatANSI
	}
	return FormatMarker
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if the NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// DetectCI checks if running in a CI environment.
func DetectCI() bool {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "TRAVIS"}
	for _, v := range ciVars {
		if _, exists := os.LookupEnv(v); exists {
			return true
		}
	}
	return false
}

package render

import "github.com/charmbracelet/lipgloss"

// Color palette - lime green accent over neutral grays.
// Shared by the renderers and the explore TUI.
const (
	ColorLime     = "154" // Primary accent (#AFFF00) - matched spans
	ColorLimeDim  = "106" // Dimmed lime for inactive/borders
	ColorWhite    = "255" // Headers, file labels
	ColorGray     = "245" // Secondary text, summaries
	ColorDarkGray = "238" // Elision markers, separators
	ColorRed      = "196" // Errors
	ColorYellow   = "220" // Warnings, empty results
)

// Styles holds the lipgloss styles for ANSI rendering.
type Styles struct {
	Match    lipgloss.Style // matched spans
	Text     lipgloss.Style // unmatched text
	Ellipsis lipgloss.Style // elision marker between context windows
	Label    lipgloss.Style // file headings in multi-file output
	Summary  lipgloss.Style // match count footers
}

// DefaultStyles returns the styled set for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Match:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Text:     lipgloss.NewStyle(),
		Ellipsis: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Summary:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Match:    lipgloss.NewStyle(),
		Text:     lipgloss.NewStyle(),
		Ellipsis: lipgloss.NewStyle(),
		Label:    lipgloss.NewStyle(),
		Summary:  lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}

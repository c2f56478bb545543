package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/textmark/textmark/internal/render"
)

// Styles holds the explorer's layout styles. Highlighting for the sliced
// text itself comes from render.Styles; these cover the chrome around it.
type Styles struct {
	Header lipgloss.Style // title bar
	Mode   lipgloss.Style // matching mode indicators
	Border lipgloss.Style // panel borders, dividers
	Dim    lipgloss.Style // key hints
	Count  lipgloss.Style // match count
	Empty  lipgloss.Style // "no matches" notice
	Error  lipgloss.Style // pattern compile errors
}

// DefaultStyles returns styled components for TUI mode.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(render.ColorLime)),
		Mode:   lipgloss.NewStyle().Foreground(lipgloss.Color(render.ColorLimeDim)),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color(render.ColorDarkGray)),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(render.ColorGray)),
		Count:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(render.ColorWhite)),
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color(render.ColorYellow)),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(render.ColorRed)),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Mode:   lipgloss.NewStyle(),
		Border: lipgloss.NewStyle(),
		Dim:    lipgloss.NewStyle(),
		Count:  lipgloss.NewStyle(),
		Empty:  lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}

package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/textmark/textmark/internal/render"
	"github.com/textmark/textmark/pkg/textslice"
)

// ExplorerConfig configures the interactive explorer.
type ExplorerConfig struct {
	Text    string           // text being sliced
	Label   string           // display name (file path or "stdin")
	Terms   []string         // initial search terms
	Match   textslice.Config // initial matching configuration
	NoColor bool
}

// RunExplorer starts the interactive explorer and blocks until the user
// exits. The output must be an interactive terminal.
func RunExplorer(cfg ExplorerConfig) error {
	if !render.IsTTY(os.Stdout) {
		return fmt.Errorf("explore needs an interactive terminal (stdout is not a TTY)")
	}

	p := tea.NewProgram(newExplorerModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// explorerModel is the bubbletea model for interactive slicing. Every edit
// to the term input re-slices the text and refreshes the viewport.
type explorerModel struct {
	cfg      ExplorerConfig
	match    textslice.Config
	input    textinput.Model
	viewport viewport.Model
	styles   Styles
	hl       render.Styles
	width    int
	height   int
	ready    bool
	quitting bool

	matches  int
	sliceErr error
}

// newExplorerModel creates a new explorer model.
func newExplorerModel(cfg ExplorerConfig) *explorerModel {
	ti := textinput.New()
	ti.Placeholder = "terms, comma separated"
	ti.Prompt = "❯ "
	ti.CharLimit = 256
	if !cfg.NoColor {
		ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(render.ColorLime))
	}
	ti.SetValue(strings.Join(cfg.Terms, ", "))
	ti.Focus()

	return &explorerModel{
		cfg:    cfg,
		match:  cfg.Match,
		input:  ti,
		styles: GetStyles(cfg.NoColor),
		hl:     render.GetStyles(cfg.NoColor),
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m *explorerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			m.match.Boundary = nextBoundary(m.match.Boundary)
			m.reslice()
			return m, nil

		case "ctrl+e":
			m.match.Escape = !m.match.Escape
			m.reslice()
			return m, nil

		case "ctrl+t":
			m.match.CaseSensitive = !m.match.CaseSensitive
			m.reslice()
			return m, nil

		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd

		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.reslice()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Header, mode line, input, divider, status bar surround the viewport.
		vpHeight := msg.Height - 5
		if vpHeight < 3 {
			vpHeight = 3
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
			m.reslice()
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.input.Width = msg.Width - 4
	}

	return m, nil
}

// reslice re-runs the pipeline for the current input and refreshes the
// viewport. On a pattern error the previous content stays visible and the
// status bar shows the failure.
func (m *explorerModel) reslice() {
	spans, err := textslice.SliceText(m.cfg.Text, splitTerms(m.input.Value()), m.match)
	m.sliceErr = err
	if err != nil {
		return
	}

	m.matches = countMatched(spans)
	m.viewport.SetContent(render.Highlight(m.cfg.Text, spans, m.hl, 0))
}

// View implements tea.Model.
func (m *explorerModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	sections := []string{
		m.renderHeader(),
		m.input.View(),
		m.renderDivider(),
		m.viewport.View(),
		m.renderStatusBar(),
	}
	return strings.Join(sections, "\n")
}

// renderHeader renders the title and the active matching modes.
func (m *explorerModel) renderHeader() string {
	title := "textmark explore"
	if m.cfg.Label != "" {
		title = fmt.Sprintf("textmark explore • %s", m.cfg.Label)
	}

	mode := fmt.Sprintf("boundary=%s  case=%s  escape=%s",
		m.match.Boundary,
		onOff(m.match.CaseSensitive),
		onOff(m.match.Escape))

	return m.styles.Header.Render(title) + "\n" + m.styles.Mode.Render(mode)
}

// renderDivider renders a horizontal divider line.
func (m *explorerModel) renderDivider() string {
	width := m.width
	if width < 10 {
		width = 10
	}
	return m.styles.Border.Render(strings.Repeat("─", width))
}

// renderStatusBar renders the match count or error plus the key hints.
func (m *explorerModel) renderStatusBar() string {
	var left string
	switch {
	case m.sliceErr != nil:
		left = m.styles.Error.Render("✗ " + m.sliceErr.Error())
	case m.matches == 0 && strings.TrimSpace(m.input.Value()) != "":
		left = m.styles.Empty.Render("no matches")
	default:
		left = m.styles.Count.Render(fmt.Sprintf("%d matches", m.matches))
	}

	hint := m.styles.Dim.Render("tab boundary · ctrl+e escape · ctrl+t case · esc quit")
	return left + m.styles.Dim.Render("  │  ") + hint
}

// nextBoundary cycles through the boundary modes in order.
func nextBoundary(b textslice.Boundary) textslice.Boundary {
	switch b {
	case textslice.BoundaryNone:
		return textslice.BoundaryStart
	case textslice.BoundaryStart:
		return textslice.BoundaryEnd
	case textslice.BoundaryEnd:
		return textslice.BoundaryBoth
	default:
		return textslice.BoundaryNone
	}
}

// splitTerms parses the input line into search terms. Commas separate terms
// so multi-word terms stay intact; blanks are dropped.
func splitTerms(s string) []string {
	parts := strings.Split(s, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

func countMatched(spans []textslice.Span) int {
	n := 0
	for _, s := range spans {
		if s.Matched {
			n++
		}
	}
	return n
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Ensure explorerModel implements tea.Model
var _ tea.Model = (*explorerModel)(nil)

package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textmark/textmark/pkg/textslice"
)

// newTestModel builds a ready explorer over the given text and terms, with
// colors off so views compare as plain strings.
func newTestModel(t *testing.T, text string, terms []string, match textslice.Config) *explorerModel {
	t.Helper()

	m := newExplorerModel(ExplorerConfig{
		Text:    text,
		Label:   "sample.txt",
		Terms:   terms,
		Match:   match,
		NoColor: true,
	})
	_, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestNewExplorerModel_CarriesInitialState(t *testing.T) {
	// Given: a config with terms and a matching mode
	cfg := ExplorerConfig{
		Text:    "Hello world",
		Terms:   []string{"hello", "world"},
		Match:   textslice.DefaultConfig(),
		NoColor: true,
	}

	// When: creating the model
	m := newExplorerModel(cfg)

	// Then: the input holds the terms and the mode is carried
	assert.Equal(t, "hello, world", m.input.Value())
	assert.Equal(t, textslice.BoundaryBoth, m.match.Boundary)
	assert.False(t, m.ready)
}

func TestExplorerModel_InitialView(t *testing.T) {
	// Given: a ready model with two matches
	m := newTestModel(t, "Hello world, hello universe", []string{"hello"}, textslice.DefaultConfig())

	// When: rendering the view
	view := m.View()

	// Then: title, text, count, and hints are all visible
	assert.Contains(t, view, "textmark explore")
	assert.Contains(t, view, "sample.txt")
	assert.Contains(t, view, "Hello world, hello universe")
	assert.Contains(t, view, "2 matches")
	assert.Contains(t, view, "boundary=both")
	assert.Contains(t, view, "esc quit")
}

func TestExplorerModel_Quit(t *testing.T) {
	m := newTestModel(t, "text", nil, textslice.DefaultConfig())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestExplorerModel_BoundaryCycleReslices(t *testing.T) {
	// Given: "go" as a whole word matches once
	m := newTestModel(t, "gopher go gopher", []string{"go"}, textslice.DefaultConfig())
	require.Equal(t, 1, m.matches)

	// When: cycling boundary (both wraps around to none)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	// Then: unanchored matching finds the prefix occurrences too
	assert.Equal(t, textslice.BoundaryNone, m.match.Boundary)
	assert.Equal(t, 3, m.matches)
	assert.Contains(t, m.View(), "boundary=none")
}

func TestExplorerModel_ToggleCase(t *testing.T) {
	// Given: case folding on, both capitalizations match
	m := newTestModel(t, "Hello hello", []string{"hello"}, textslice.DefaultConfig())
	require.Equal(t, 2, m.matches)

	// When: toggling case sensitivity
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	// Then: only the exact-case occurrence remains
	assert.True(t, m.match.CaseSensitive)
	assert.Equal(t, 1, m.matches)
	assert.Contains(t, m.View(), "case=on")
}

func TestExplorerModel_ToggleEscape(t *testing.T) {
	m := newTestModel(t, "a+b", []string{"a+b"}, textslice.DefaultConfig())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})

	assert.False(t, m.match.Escape)
	assert.Contains(t, m.View(), "escape=off")
}

func TestExplorerModel_TypingReslices(t *testing.T) {
	// Given: a term that matches
	m := newTestModel(t, "Hello world", []string{"hello"}, textslice.DefaultConfig())
	require.Equal(t, 1, m.matches)

	// When: typing extends the term past any occurrence
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	// Then: the count drops and the status bar says so
	assert.Equal(t, 0, m.matches)
	assert.Contains(t, m.View(), "no matches")
}

func TestExplorerModel_InvalidPatternShowsError(t *testing.T) {
	// Given: raw patterns allowed and an unclosed group
	raw := textslice.Config{Escape: false, Boundary: textslice.BoundaryNone}
	m := newTestModel(t, "some text", []string{"("}, raw)

	// Then: the slice error is surfaced instead of a partition
	require.Error(t, m.sliceErr)
	assert.Contains(t, m.View(), "✗")
}

func TestNextBoundary_Cycle(t *testing.T) {
	assert.Equal(t, textslice.BoundaryStart, nextBoundary(textslice.BoundaryNone))
	assert.Equal(t, textslice.BoundaryEnd, nextBoundary(textslice.BoundaryStart))
	assert.Equal(t, textslice.BoundaryBoth, nextBoundary(textslice.BoundaryEnd))
	assert.Equal(t, textslice.BoundaryNone, nextBoundary(textslice.BoundaryBoth))
}

func TestSplitTerms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "a, b", []string{"a", "b"}},
		{"multi word term", "hello world", []string{"hello world"}},
		{"empty", "", nil},
		{"only separators", " , ,", nil},
		{"blank entries dropped", "a,,b", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitTerms(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountMatched(t *testing.T) {
	spans := []textslice.Span{
		{Start: 0, End: 5, Matched: true},
		{Start: 5, End: 13, Matched: false},
		{Start: 13, End: 18, Matched: true},
	}

	assert.Equal(t, 2, countMatched(spans))
	assert.Equal(t, 0, countMatched(nil))
}

func TestExplorerModel_InterfaceCompliance(t *testing.T) {
	// Ensure explorerModel implements tea.Model
	var _ tea.Model = (*explorerModel)(nil)
}

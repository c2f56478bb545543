package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// TermCount is one term's raw occurrence count, taken before overlap
// merging, so touching occurrences still count individually.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// StatsInfo contains slicing statistics for one input.
type StatsInfo struct {
	Label    string    `json:"label"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified,omitempty"`

	// Partition stats
	Spans        int     `json:"spans"`
	Matches      int     `json:"matches"`
	MatchedBytes int64   `json:"matched_bytes"`
	Coverage     float64 `json:"coverage"` // matched bytes / total bytes

	Terms []TermCount `json:"terms,omitempty"`
}

// StatsRenderer displays slicing statistics.
type StatsRenderer struct {
	out    io.Writer
	styles Styles
}

// NewStatsRenderer creates a stats renderer.
func NewStatsRenderer(out io.Writer, noColor bool) *StatsRenderer {
	return &StatsRenderer{
		out:    out,
		styles: GetStyles(noColor),
	}
}

// Render displays stats to the terminal.
func (r *StatsRenderer) Render(info StatsInfo) error {
	_, _ = fmt.Fprintf(r.out, "%s\n\n", r.styles.Header.Render("Slice Stats: "+info.Label))

	_, _ = fmt.Fprintf(r.out, "  Size:     %s\n", FormatBytes(info.Size))
	if !info.Modified.IsZero() {
		_, _ = fmt.Fprintf(r.out, "  Modified: %s\n", formatTime(info.Modified))
	}
	_, _ = fmt.Fprintln(r.out)

	_, _ = fmt.Fprintf(r.out, "  Spans:    %d\n", info.Spans)
	_, _ = fmt.Fprintf(r.out, "  Matches:  %s\n", r.renderCount(info.Matches))
	_, _ = fmt.Fprintf(r.out, "  Matched:  %s\n", FormatBytes(info.MatchedBytes))
	_, _ = fmt.Fprintf(r.out, "  Coverage: %s\n", r.renderCoverage(info.Coverage))

	if len(info.Terms) > 0 {
		_, _ = fmt.Fprintln(r.out)
		_, _ = fmt.Fprintln(r.out, "  Terms:")
		for _, tc := range info.Terms {
			_, _ = fmt.Fprintf(r.out, "    %-24s %s\n", tc.Term, r.renderCount(tc.Count))
		}
	}

	return nil
}

// RenderJSON outputs stats as JSON.
func (r *StatsRenderer) RenderJSON(info StatsInfo) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(info)
}

// renderCount formats an occurrence count, flagging zero.
func (r *StatsRenderer) renderCount(n int) string {
	if n == 0 {
		return r.styles.Empty.Render("0")
	}
	return r.styles.Count.Render(fmt.Sprintf("%d", n))
}

// renderCoverage formats the matched fraction as a percentage.
func (r *StatsRenderer) renderCoverage(c float64) string {
	s := fmt.Sprintf("%.1f%%", c*100)
	if c == 0 {
		return r.styles.Empty.Render(s)
	}
	return r.styles.Count.Render(s)
}

// formatTime formats a time for display.
func formatTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("2006-01-02 15:04")
	}
}

// FormatBytes formats bytes to human-readable format.
func FormatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

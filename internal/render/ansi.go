package render

import (
	"io"
	"strings"

	"github.com/textmark/textmark/pkg/textslice"
)

// Highlight returns the text with matched spans styled and unmatched text
// clipped to the context windows. It is the string form of the ANSI renderer,
// reused by the explore TUI for viewport content.
func Highlight(text string, spans []textslice.Span, styles Styles, context int) string {
	var b strings.Builder
	for _, seg := range segments(text, spans, context) {
		switch {
		case seg.gap:
			b.WriteString(styles.Ellipsis.Render(ellipsis))
		case seg.matched:
			b.WriteString(styles.Match.Render(seg.text))
		default:
			b.WriteString(styles.Text.Render(seg.text))
		}
	}
	return b.String()
}

// ansiRenderer writes terminal text with matched spans highlighted.
type ansiRenderer struct {
	out     io.Writer
	styles  Styles
	context int
}

func (r *ansiRenderer) Render(text string, spans []textslice.Span) error {
	segs := segments(text, spans, r.context)
	if len(segs) == 0 {
		return nil
	}

	out := Highlight(text, spans, r.styles, r.context)
	if !terminated(segs) {
		out += "\n"
	}

	_, err := io.WriteString(r.out, out)
	return err
}

package render

import (
	"html"
	"io"
	"strings"

	"github.com/textmark/textmark/pkg/textslice"
)

// htmlRenderer writes an HTML fragment with matched spans wrapped in a
// configurable tag. Span text is entity-escaped; the output embeds directly
// into a page.
type htmlRenderer struct {
	out     io.Writer
	tag     string
	context int
}

func (r *htmlRenderer) Render(text string, spans []textslice.Span) error {
	segs := segments(text, spans, r.context)
	if len(segs) == 0 {
		return nil
	}

	var b strings.Builder
	for _, seg := range segs {
		switch {
		case seg.gap:
			b.WriteString(ellipsis)
		case seg.matched:
			b.WriteString("<")
			b.WriteString(r.tag)
			b.WriteString(">")
			b.WriteString(html.EscapeString(seg.text))
			b.WriteString("</")
			b.WriteString(r.tag)
			b.WriteString(">")
		default:
			b.WriteString(html.EscapeString(seg.text))
		}
	}
	if !terminated(segs) {
		b.WriteByte('\n')
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

package render

import (
	"io"
	"strings"

	"github.com/textmark/textmark/pkg/textslice"
)

// Markers wrapped around matched spans in plain text output.
const (
	markOpen  = "»"
	markClose = "«"
)

// markerRenderer writes plain text with matched spans wrapped in » and «.
// It is the default for piped output: it survives any terminal and stays
// grep-able.
type markerRenderer struct {
	out     io.Writer
	context int
}

func (r *markerRenderer) Render(text string, spans []textslice.Span) error {
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
			b.WriteString(markOpen)
			b.WriteString(seg.text)
			b.WriteString(markClose)
		default:
			b.WriteString(seg.text)
		}
	}
	if !terminated(segs) {
		b.WriteByte('\n')
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

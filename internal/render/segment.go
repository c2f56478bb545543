package render

import (
	"strings"
	"unicode/utf8"

	"github.com/textmark/textmark/pkg/textslice"
)

// ellipsis stands in for clipped text between context windows.
const ellipsis = "…"

// segment is one renderable piece of the partition: the text of a span, or
// an elision marker standing in for clipped context.
type segment struct {
	text    string
	matched bool
	gap     bool
}

// segments converts a partition into renderable pieces. With context > 0,
// unmatched spans are clipped to at most context bytes on the sides adjacent
// to a match, the elided middle replaced by a gap segment. Matched spans are
// never clipped. A partition with no matched span passes through whole, as
// does one rendered with context 0.
func segments(text string, spans []textslice.Span, context int) []segment {
	if len(spans) == 0 {
		return nil
	}

	if context <= 0 || !anyMatched(spans) {
		out := make([]segment, 0, len(spans))
		for _, s := range spans {
			out = append(out, segment{text: text[s.Start:s.End], matched: s.Matched})
		}
		return out
	}

	var out []segment
	for i, s := range spans {
		chunk := text[s.Start:s.End]
		if s.Matched {
			out = append(out, segment{text: chunk, matched: true})
			continue
		}
		out = append(out, clip(chunk, context, i == 0, i == len(spans)-1)...)
	}
	return out
}

// clip trims one unmatched chunk to its context windows. The head window is
// dropped for the first span of the partition (no match precedes it) and the
// tail window for the last.
func clip(chunk string, context int, first, last bool) []segment {
	head, tail := context, context
	if first {
		head = 0
	}
	if last {
		tail = 0
	}
	if len(chunk) <= head+tail {
		return []segment{{text: chunk}}
	}

	headEnd := snapLeft(chunk, head)
	tailStart := snapLeft(chunk, len(chunk)-tail)
	if headEnd >= tailStart {
		return []segment{{text: chunk}}
	}

	segs := make([]segment, 0, 3)
	if headEnd > 0 {
		segs = append(segs, segment{text: chunk[:headEnd]})
	}
	segs = append(segs, segment{gap: true})
	if tailStart < len(chunk) {
		segs = append(segs, segment{text: chunk[tailStart:]})
	}
	return segs
}

// snapLeft moves a byte offset left to the nearest UTF-8 rune boundary so
// clipping never splits an encoded rune.
func snapLeft(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

func anyMatched(spans []textslice.Span) bool {
	for _, s := range spans {
		if s.Matched {
			return true
		}
	}
	return false
}

// terminated reports whether the final segment already ends the output line,
// so renderers know whether a trailing newline is needed.
func terminated(segs []segment) bool {
	if len(segs) == 0 {
		return true
	}
	last := segs[len(segs)-1]
	return !last.gap && strings.HasSuffix(last.text, "\n")
}

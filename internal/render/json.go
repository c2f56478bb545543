package render

import (
	"encoding/json"
	"io"

	"github.com/textmark/textmark/pkg/textslice"
)

// jsonRenderer writes the partition as a JSON array of spans carrying their
// text. Context clipping does not apply; the array always covers the whole
// input.
type jsonRenderer struct {
	out io.Writer
}

type jsonSpan struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Matched bool   `json:"matched"`
	Text    string `json:"text"`
}

func (r *jsonRenderer) Render(text string, spans []textslice.Span) error {
	out := make([]jsonSpan, 0, len(spans))
	for _, s := range spans {
		out = append(out, jsonSpan{
			Start:   s.Start,
			End:     s.End,
			Matched: s.Matched,
			Text:    text[s.Start:s.End],
		})
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

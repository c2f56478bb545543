package textslice

// FillGaps completes a sequence of matched spans into a total ordered
// partition of [0, textLength): every index is covered exactly once, matched
// regions carry Matched=true, and the gaps between them are emitted as
// unmatched spans. Zero-length spans are never emitted.
//
// The input must be sorted ascending and non-overlapping, as produced by
// MergeOverlap; spans reaching outside [0, textLength) are clamped. A
// textLength of zero (or less) yields no spans at all, and an empty input
// yields a single unmatched span covering the whole text.
func FillGaps(spans []Span, textLength int) []Span {
	if textLength <= 0 {
		return nil
	}

	filled := make([]Span, 0, 2*len(spans)+1)
	cursor := 0
	for _, sp := range spans {
		start, end := sp.Start, sp.End
		if start < cursor {
			start = cursor
		}
		if end > textLength {
			end = textLength
		}
		if end <= start {
			continue
		}
		if start > cursor {
			filled = append(filled, Span{Start: cursor, End: start, Matched: false})
		}
		filled = append(filled, Span{Start: start, End: end, Matched: true})
		cursor = end
	}
	if cursor < textLength {
		filled = append(filled, Span{Start: cursor, End: textLength, Matched: false})
	}
	return filled
}

package textslice

import "sort"

// MergeOverlap coalesces overlapping and exactly-adjacent spans into maximal
// disjoint spans, sorted ascending by Start. Input order and duplicates do
// not affect the result, merging an already-merged sequence is a no-op, and
// the input slice is never modified. A merged span is Matched if any of its
// constituents was.
func MergeOverlap(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := make([]Span, 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		// Half-open semantics: a span starting exactly at cur.End touches it.
		if next.Start <= cur.End {
			if next.End > cur.End {
				cur.End = next.End
			}
			cur.Matched = cur.Matched || next.Matched
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	return append(merged, cur)
}

package textslice

// SliceText is the primary entry point: it scans text for the given terms,
// merges overlapping occurrences, and fills the gaps, returning a total
// ordered partition of the text where every span is labeled matched or
// unmatched. Concatenating text[s.Start:s.End] over the result reconstructs
// the input exactly.
//
// A nil src selects DefaultConfig(). With no terms (or no matches) the whole
// text comes back as a single unmatched span; empty text yields no spans.
func SliceText(text string, terms []string, src Source) ([]Span, error) {
	occurrences, err := Scan(text, terms, src)
	if err != nil {
		return nil, err
	}
	return FillGaps(MergeOverlap(occurrences), len(text)), nil
}

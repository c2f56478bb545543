package textslice

import "fmt"

// Scan locates every occurrence of the given terms in text and returns them
// as matched spans. Terms are deduplicated (first occurrence wins, order
// preserved) and empty terms are dropped. Spans from one term are ascending
// by index; spans from different terms are concatenated in term order, so
// the combined result may contain overlaps and duplicates; MergeOverlap
// normalizes them.
//
// A nil src selects DefaultConfig(). Matcher construction errors abort the
// scan and are returned wrapped with the offending term.
func Scan(text string, terms []string, src Source) ([]Span, error) {
	if src == nil {
		src = DefaultConfig()
	}
	factory, err := src.matcherFactory()
	if err != nil {
		return nil, err
	}

	var spans []Span
	for _, term := range dedupeTerms(terms) {
		m, err := factory(term)
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", term, err)
		}
		spans = appendOccurrences(spans, m, text)
	}
	return spans, nil
}

// appendOccurrences walks one term's matcher over text with an advancing
// cursor. Only spans with end > start are emitted; a zero-width occurrence
// still moves the cursor forward by one index so the walk always terminates,
// even for patterns that match everywhere.
func appendOccurrences(spans []Span, m Matcher, text string) []Span {
	pos := 0
	for {
		start, end, ok := m.FindNext(text, pos)
		if !ok {
			return spans
		}
		if end > start {
			spans = append(spans, Span{Start: start, End: end, Matched: true})
			pos = end
		} else {
			pos = start + 1
		}
	}
}

// dedupeTerms collapses duplicate terms, keeping first-seen order for
// deterministic output, and drops empty terms.
func dedupeTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	unique := make([]string, 0, len(terms))
	for _, term := range terms {
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		unique = append(unique, term)
	}
	return unique
}

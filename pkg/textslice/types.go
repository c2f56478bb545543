// Package textslice locates occurrences of search terms inside a text and
// partitions it into a contiguous, gap-free sequence of matched and unmatched
// spans. It is a building block for highlighters, snippet generators, and
// annotation pipelines.
package textslice

import "errors"

// Span represents a half-open range [Start, End) over a text's byte indices.
type Span struct {
	// Start is the starting byte offset (0-indexed, inclusive).
	Start int `json:"start"`

	// End is the ending byte offset (exclusive).
	End int `json:"end"`

	// Matched reports whether the range was produced by a term match
	// rather than synthesized to cover a gap between matches.
	Matched bool `json:"matched"`
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether s and other share at least one index.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Touches reports whether s and other overlap or are exactly adjacent.
// Adjacent spans coalesce under MergeOverlap.
func (s Span) Touches(other Span) bool {
	return s.Start <= other.End && other.Start <= s.End
}

// Matcher locates successive occurrences of one search term inside a text.
//
// Occurrences are the leftmost, non-overlapping matches produced by scanning
// the text once from the beginning. FindNext returns the first such occurrence
// beginning at or after from, reporting ok=false when none remains. A zero
// width occurrence (start == end) is legal; callers that loop must advance
// past it by one index to guarantee forward progress.
//
// Implementations may cache per-text scan state, so a single Matcher must not
// be shared across goroutines.
type Matcher interface {
	FindNext(text string, from int) (start, end int, ok bool)
}

// MatcherFactory builds the Matcher for a single search term. Returning an
// error (for example on pattern compilation failure) aborts the scan.
type MatcherFactory func(term string) (Matcher, error)

// Source supplies the matching strategy for Scan and SliceText: either a
// declarative Config or a custom MatcherFactory. A nil Source falls back to
// DefaultConfig().
type Source interface {
	matcherFactory() (MatcherFactory, error)
}

// FactorySource adapts a custom MatcherFactory into a Source. The factory is
// used verbatim, bypassing escaping, boundary wrapping, and case folding.
type FactorySource struct {
	Factory MatcherFactory
}

func (s FactorySource) matcherFactory() (MatcherFactory, error) {
	if s.Factory == nil {
		return nil, errors.New("textslice: nil matcher factory")
	}
	return s.Factory, nil
}

// WithFactory wraps a custom per-term matcher factory for use as the Source
// argument of Scan and SliceText.
func WithFactory(factory MatcherFactory) Source {
	return FactorySource{Factory: factory}
}

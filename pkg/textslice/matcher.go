package textslice

import (
	"regexp"
	"sort"

	aho "github.com/petar-dambovaliev/aho-corasick"
)

// occList holds the [start, end) occurrence pairs of one term in one text,
// sorted ascending by start.
type occList [][2]int

// next returns the first occurrence beginning at or after from.
func (l occList) next(from int) (start, end int, ok bool) {
	i := sort.Search(len(l), func(i int) bool { return l[i][0] >= from })
	if i == len(l) {
		return 0, 0, false
	}
	return l[i][0], l[i][1], true
}

// regexpMatcher scans with a compiled regular expression. Occurrences for a
// text are collected in a single pass over the whole string and replayed
// through FindNext, so boundary assertions like \b always see their full
// surrounding context (matching a substring would lose it). Rebinding to a
// different text resets the collected occurrences.
type regexpMatcher struct {
	re *regexp.Regexp

	bound bool
	text  string
	occ   occList
}

func (m *regexpMatcher) FindNext(text string, from int) (start, end int, ok bool) {
	if !m.bound || m.text != text {
		m.bind(text)
	}
	return m.occ.next(from)
}

func (m *regexpMatcher) bind(text string) {
	m.bound = true
	m.text = text
	pairs := m.re.FindAllStringIndex(text, -1)
	m.occ = make(occList, len(pairs))
	for i, p := range pairs {
		m.occ[i] = [2]int{p[0], p[1]}
	}
}

// literalMatcher scans for plain-text occurrences of a single term with an
// Aho-Corasick automaton. Case folding happens inside the automaton during
// the scan, so no lowered copy of the text is ever allocated.
type literalMatcher struct {
	automaton aho.AhoCorasick

	bound bool
	text  string
	occ   occList
}

func newLiteralMatcher(term string, caseSensitive bool) *literalMatcher {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		AsciiCaseInsensitive: !caseSensitive,
		DFA:                  true,
	})
	return &literalMatcher{automaton: builder.Build([]string{term})}
}

func (m *literalMatcher) FindNext(text string, from int) (start, end int, ok bool) {
	if !m.bound || m.text != text {
		m.bind(text)
	}
	return m.occ.next(from)
}

func (m *literalMatcher) bind(text string) {
	m.bound = true
	m.text = text
	matches := m.automaton.FindAll(text)
	m.occ = make(occList, len(matches))
	for i := range matches {
		m.occ[i] = [2]int{matches[i].Start(), matches[i].End()}
	}
}

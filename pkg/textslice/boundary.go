package textslice

import (
	"fmt"
	"strings"
)

// Boundary selects how a term's matches must align with word edges.
type Boundary string

const (
	// BoundaryNone matches the term anywhere, including inside words.
	BoundaryNone Boundary = "none"

	// BoundaryStart anchors a word boundary before the term and requires
	// one or more word characters after it: the match extends rightward to
	// the end of the enclosing word ("test" matches inside "testing" as
	// the whole of "testing").
	BoundaryStart Boundary = "start"

	// BoundaryEnd requires one or more word characters before the term and
	// anchors a word boundary after it: the match extends leftward to the
	// start of the enclosing word.
	BoundaryEnd Boundary = "end"

	// BoundaryBoth anchors word boundaries on both sides, matching exact
	// whole words only.
	BoundaryBoth Boundary = "both"
)

// ParseBoundary converts a configuration or flag value into a Boundary.
// It accepts the mode names plus the boolean spellings "true"/"on"/"word"
// (both edges) and "false"/"off" (none). The empty string parses as
// BoundaryNone.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "false", "off":
		return BoundaryNone, nil
	case "start":
		return BoundaryStart, nil
	case "end":
		return BoundaryEnd, nil
	case "both", "true", "on", "word":
		return BoundaryBoth, nil
	default:
		return "", fmt.Errorf("unknown boundary mode %q (want none, start, end, or both)", s)
	}
}

// anchors reports whether the mode wraps terms with boundary assertions.
func (b Boundary) anchors() bool {
	switch b {
	case BoundaryStart, BoundaryEnd, BoundaryBoth:
		return true
	}
	return false
}

// valid reports whether b is a recognized mode. The zero value is valid and
// behaves as BoundaryNone.
func (b Boundary) valid() bool {
	switch b {
	case "", BoundaryNone, BoundaryStart, BoundaryEnd, BoundaryBoth:
		return true
	}
	return false
}

// BoundaryPattern wraps a term pattern with word-boundary assertions for the
// given mode. BoundaryNone and blank terms pass through unchanged. The term
// is inserted verbatim, so callers wanting literal matching must escape it
// first (see EscapeLiteral).
//
// With BoundaryStart or BoundaryEnd the extending word character is required
// to exist: a term sitting directly against the text edge with nothing to
// extend into produces no match.
func BoundaryPattern(term string, mode Boundary) string {
	if strings.TrimSpace(term) == "" {
		return term
	}
	switch mode {
	case BoundaryStart:
		return `\b` + term + `\w+`
	case BoundaryEnd:
		return `\w+` + term + `\b`
	case BoundaryBoth:
		return `\b` + term + `\b`
	default:
		return term
	}
}

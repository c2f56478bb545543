package textslice

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Config declares how raw search terms are turned into matchers. The zero
// value means: no escaping (terms are raw patterns), no boundary anchoring,
// case-insensitive. Config implements Source, so it can be passed directly
// to Scan and SliceText.
type Config struct {
	// Escape treats pattern metacharacters in terms as literal text.
	// Disabling it hands raw patterns to the compiler; terms that can
	// match zero width then rely on the scanner's forced cursor advance
	// to terminate.
	Escape bool `yaml:"escape" json:"escape"`

	// Boundary selects the word-boundary anchoring applied to each term.
	Boundary Boundary `yaml:"boundary" json:"boundary"`

	// CaseSensitive disables the default case folding.
	CaseSensitive bool `yaml:"case_sensitive" json:"case_sensitive"`
}

// DefaultConfig returns the standard matching configuration: terms escaped,
// whole-word anchoring, case-insensitive.
func DefaultConfig() Config {
	return Config{
		Escape:        true,
		Boundary:      BoundaryBoth,
		CaseSensitive: false,
	}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if !c.Boundary.valid() {
		return fmt.Errorf("unknown boundary mode %q (want none, start, end, or both)", c.Boundary)
	}
	return nil
}

// Factory returns the per-term MatcherFactory the configuration describes:
// escape, then boundary-wrap, then compile for repeated scanning with case
// folding unless CaseSensitive is set. Terms that reduce to plain literal
// matching skip the pattern compiler entirely and use an Aho-Corasick
// automaton instead.
func (c Config) Factory() (MatcherFactory, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return func(term string) (Matcher, error) {
		if c.literalTerm(term) {
			return newLiteralMatcher(term, c.CaseSensitive), nil
		}
		pattern := term
		if c.Escape {
			pattern = EscapeLiteral(pattern)
		}
		pattern = BoundaryPattern(pattern, c.Boundary)
		if !c.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
		}
		return &regexpMatcher{re: re}, nil
	}, nil
}

func (c Config) matcherFactory() (MatcherFactory, error) {
	return c.Factory()
}

// literalTerm reports whether term bypasses the pattern compiler: escaped
// literal text with no boundary anchoring, and case folding the automaton
// can perform itself. The automaton folds ASCII only, so case-insensitive
// terms containing multibyte runes stay on the pattern path where (?i)
// applies full Unicode folding.
func (c Config) literalTerm(term string) bool {
	if !c.Escape || c.Boundary.anchors() {
		return false
	}
	return c.CaseSensitive || isASCII(term)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

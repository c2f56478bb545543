package textslice

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// EscapeLiteral Tests
// =============================================================================

func TestEscapeLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain word unchanged",
			input:    "hello",
			expected: "hello",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "parentheses",
			input:    "f(x)",
			expected: `f\(x\)`,
		},
		{
			name:     "brackets",
			input:    "a[0]",
			expected: `a\[0\]`,
		},
		{
			name:     "braces",
			input:    "{tag}",
			expected: `\{tag\}`,
		},
		{
			name:     "forward slash",
			input:    "a/b",
			expected: `a\/b`,
		},
		{
			name:     "quantifiers",
			input:    "a*b+c?",
			expected: `a\*b\+c\?`,
		},
		{
			name:     "dot",
			input:    "file.go",
			expected: `file\.go`,
		},
		{
			name:     "backslash",
			input:    `a\b`,
			expected: `a\\b`,
		},
		{
			name:     "anchors",
			input:    "^start$",
			expected: `\^start\$`,
		},
		{
			name:     "alternation",
			input:    "a|b",
			expected: `a\|b`,
		},
		{
			name:     "dash",
			input:    "foo-bar",
			expected: `foo\-bar`,
		},
		{
			name:     "every special character",
			input:    `()[]{}/*+?.\^$|-`,
			expected: `\(\)\[\]\{\}\/\*\+\?\.\\\^\$\|\-`,
		},
		{
			name:     "multibyte passthrough",
			input:    "héllo wörld",
			expected: "héllo wörld",
		},
		{
			name:     "multibyte with specials",
			input:    "héllo.wörld",
			expected: `héllo\.wörld`,
		},
		{
			name:     "spaces preserved",
			input:    "two words",
			expected: "two words",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLiteral(tt.input))
		})
	}
}

func TestEscapeLiteral_CompilesToLiteralMatch(t *testing.T) {
	// An escaped term compiled as a pattern must match exactly itself.
	terms := []string{
		"f(x)",
		"a[0].b",
		"1+1=2?",
		`C:\path\file`,
		"a|b-c",
		"^$",
		"price {USD}",
	}

	for _, term := range terms {
		re, err := regexp.Compile(EscapeLiteral(term))
		require.NoError(t, err, "escaped %q must compile", term)

		haystack := "pad " + term + " pad"
		loc := re.FindStringIndex(haystack)
		require.NotNil(t, loc, "escaped %q must match itself", term)
		assert.Equal(t, term, haystack[loc[0]:loc[1]])
	}
}

package textslice

import "strings"

// literalSpecials are the characters EscapeLiteral prefixes with a backslash.
// The set intentionally covers more than the compiler strictly requires
// (forward slash, dash) so escaped terms stay literal inside character
// classes and delimiter-sensitive dialects.
const literalSpecials = `()[]{}/*+?.\^$|-`

// EscapeLiteral returns term with every pattern metacharacter escaped, so the
// result matches the original term literally when compiled as a pattern.
// Empty input returns empty output.
func EscapeLiteral(term string) string {
	if !strings.ContainsAny(term, literalSpecials) {
		return term
	}

	var b strings.Builder
	b.Grow(len(term) + 8)
	for i := 0; i < len(term); i++ {
		// Specials are all ASCII, so byte-wise inspection is UTF-8 safe.
		if strings.IndexByte(literalSpecials, term[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(term[i])
	}
	return b.String()
}

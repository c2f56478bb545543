package textslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// FillGaps Tests
// =============================================================================

func TestFillGaps(t *testing.T) {
	tests := []struct {
		name       string
		spans      []Span
		textLength int
		expected   []Span
	}{
		{
			name:       "no spans yields single unmatched cover",
			spans:      []Span{},
			textLength: 10,
			expected:   []Span{{Start: 0, End: 10, Matched: false}},
		},
		{
			name:       "nil spans yields single unmatched cover",
			spans:      nil,
			textLength: 10,
			expected:   []Span{{Start: 0, End: 10, Matched: false}},
		},
		{
			name:       "full cover yields single matched span",
			spans:      []Span{{Start: 0, End: 10}},
			textLength: 10,
			expected:   []Span{{Start: 0, End: 10, Matched: true}},
		},
		{
			name:       "zero text length yields nothing",
			spans:      []Span{},
			textLength: 0,
			expected:   nil,
		},
		{
			name:       "negative text length yields nothing",
			spans:      []Span{{Start: 0, End: 5}},
			textLength: -3,
			expected:   nil,
		},
		{
			name:       "middle match gets gaps on both sides",
			spans:      []Span{{Start: 3, End: 6}},
			textLength: 10,
			expected: []Span{
				{Start: 0, End: 3, Matched: false},
				{Start: 3, End: 6, Matched: true},
				{Start: 6, End: 10, Matched: false},
			},
		},
		{
			name:       "match at text start has no leading gap",
			spans:      []Span{{Start: 0, End: 4}},
			textLength: 10,
			expected: []Span{
				{Start: 0, End: 4, Matched: true},
				{Start: 4, End: 10, Matched: false},
			},
		},
		{
			name:       "match at text end has no trailing gap",
			spans:      []Span{{Start: 6, End: 10}},
			textLength: 10,
			expected: []Span{
				{Start: 0, End: 6, Matched: false},
				{Start: 6, End: 10, Matched: true},
			},
		},
		{
			name: "multiple matches interleave with gaps",
			spans: []Span{
				{Start: 2, End: 4},
				{Start: 6, End: 8},
			},
			textLength: 12,
			expected: []Span{
				{Start: 0, End: 2, Matched: false},
				{Start: 2, End: 4, Matched: true},
				{Start: 4, End: 6, Matched: false},
				{Start: 6, End: 8, Matched: true},
				{Start: 8, End: 12, Matched: false},
			},
		},
		{
			name:       "span reaching past text end is clamped",
			spans:      []Span{{Start: 8, End: 20}},
			textLength: 10,
			expected: []Span{
				{Start: 0, End: 8, Matched: false},
				{Start: 8, End: 10, Matched: true},
			},
		},
		{
			name:       "span entirely past text end is dropped",
			spans:      []Span{{Start: 15, End: 20}},
			textLength: 10,
			expected:   []Span{{Start: 0, End: 10, Matched: false}},
		},
		{
			name: "zero length input spans are skipped",
			spans: []Span{
				{Start: 3, End: 3},
				{Start: 5, End: 7},
			},
			textLength: 10,
			expected: []Span{
				{Start: 0, End: 5, Matched: false},
				{Start: 5, End: 7, Matched: true},
				{Start: 7, End: 10, Matched: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FillGaps(tt.spans, tt.textLength))
		})
	}
}

func TestFillGaps_TotalityAndContiguity(t *testing.T) {
	// For any sorted non-overlapping input, the output covers [0, length)
	// exactly: lengths sum to the text length and each span starts where
	// the previous one ended.
	inputs := []struct {
		spans      []Span
		textLength int
	}{
		{spans: nil, textLength: 1},
		{spans: []Span{{Start: 0, End: 1}}, textLength: 1},
		{spans: []Span{{Start: 4, End: 9}, {Start: 12, End: 13}}, textLength: 40},
		{spans: []Span{{Start: 0, End: 5}, {Start: 10, End: 15}, {Start: 20, End: 25}}, textLength: 25},
		{spans: []Span{{Start: 1, End: 2}, {Start: 3, End: 4}, {Start: 5, End: 6}}, textLength: 7},
	}

	for _, in := range inputs {
		filled := FillGaps(in.spans, in.textLength)

		total := 0
		for i, s := range filled {
			assert.Greater(t, s.Len(), 0, "no zero-length spans")
			total += s.Len()
			if i > 0 {
				assert.Equal(t, filled[i-1].End, s.Start, "spans must be contiguous")
			}
		}
		assert.Equal(t, in.textLength, total, "lengths must sum to text length")
		assert.Equal(t, 0, filled[0].Start)
		assert.Equal(t, in.textLength, filled[len(filled)-1].End)
	}
}

func TestFillGaps_AlternatingFlags(t *testing.T) {
	// With merged input (no two spans touching) the output strictly
	// alternates between matched and unmatched.
	filled := FillGaps([]Span{
		{Start: 2, End: 4},
		{Start: 8, End: 10},
		{Start: 14, End: 16},
	}, 20)

	for i := 1; i < len(filled); i++ {
		assert.NotEqual(t, filled[i-1].Matched, filled[i].Matched,
			"adjacent spans %d and %d share a matched flag", i-1, i)
	}
}

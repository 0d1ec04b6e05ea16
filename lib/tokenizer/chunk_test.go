package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Split(t *testing.T) {
	type tc struct {
		name       string
		input      string
		delimiters []string
		expected   []Chunk
	}

	testcases := []tc{
		{
			name:       "spaces",
			input:      "cat and dog",
			delimiters: DefaultDelimiters(),
			expected: []Chunk{
				{Text: "cat", Start: 0, End: 2},
				{Text: "and", Start: 6, End: 8},
				{Text: "dog", Start: 12, End: 14},
			},
		},
		{
			name:       "comma becomes a chunk",
			input:      "a,b",
			delimiters: DefaultDelimiters(),
			expected: []Chunk{
				{Text: "a", Start: 0, End: 0},
				{Text: ",", Start: 2, End: 2},
				{Text: "b", Start: 4, End: 4},
			},
		},
		{
			name:       "delimiter order is observable",
			input:      "a,b",
			delimiters: []string{",", " "},
			expected: []Chunk{
				{Text: "a", Start: 0, End: 0},
				{Text: ",", Start: 4, End: 4},
				{Text: "b", Start: 8, End: 8},
			},
		},
		{
			name:       "leading delimiter",
			input:      ",b",
			delimiters: DefaultDelimiters(),
			expected: []Chunk{
				{Text: ",", Start: 1, End: 1},
				{Text: "b", Start: 3, End: 3},
			},
		},
		{
			name:       "multi character delimiter",
			input:      "a--b",
			delimiters: []string{"--"},
			expected: []Chunk{
				{Text: "a", Start: 0, End: 0},
				{Text: "--", Start: 2, End: 3},
				{Text: "b", Start: 5, End: 5},
			},
		},
		{
			name:       "offsets count characters",
			input:      "héllo wörld",
			delimiters: []string{" "},
			expected: []Chunk{
				{Text: "héllo", Start: 0, End: 4},
				{Text: "wörld", Start: 8, End: 12},
			},
		},
		{
			name:       "only delimiters",
			input:      ",,",
			delimiters: DefaultDelimiters(),
			expected: []Chunk{
				{Text: ",", Start: 1, End: 1},
				{Text: ",", Start: 4, End: 4},
			},
		},
		{
			name:       "empty",
			input:      "",
			delimiters: DefaultDelimiters(),
			expected:   []Chunk{},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Split(tc.input, tc.delimiters))
		})
	}
}

func Test_SplitOffsetsPointIntoNormalizedText(t *testing.T) {
	input := "the quick,brown  fox, jumps"
	padded := []rune(Normalize(input, DefaultDelimiters()))

	prev := -1
	for _, chunk := range Split(input, DefaultDelimiters()) {
		require.GreaterOrEqual(t, chunk.End, chunk.Start)
		require.Greater(t, chunk.Start, prev)
		require.Equal(t, chunk.Text, string(padded[chunk.Start:chunk.End+1]))
		prev = chunk.Start
	}
}

func Test_Normalize(t *testing.T) {
	require.Equal(t, "a , b", Normalize("a,b", []string{","}))
	require.Equal(t, "a   ,   b", Normalize("a,b", []string{",", " "}))
	require.Equal(t, "a,b", Normalize("a,b", nil))
}

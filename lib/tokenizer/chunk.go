package tokenizer

import (
	"strings"
	"unicode/utf8"
)

var defaultDelimiters = []string{" ", ","}

// DefaultDelimiters returns a fresh copy of the delimiters used when none
// are configured.
func DefaultDelimiters() []string {
	return append([]string(nil), defaultDelimiters...)
}

// Chunk is a single word of the normalized text. Start and End are inclusive
// character offsets into the normalized text returned by Normalize.
type Chunk struct {
	Text  string
	Start int
	End   int
}

// Normalize pads every occurrence of each delimiter with a space on both
// sides. Delimiters are applied one after another in the given order, so a
// later delimiter also matches inside the padding of an earlier one.
func Normalize(text string, delimiters []string) string {
	for _, d := range delimiters {
		text = strings.ReplaceAll(text, d, " "+d+" ")
	}
	return text
}

// Split normalizes text and cuts it into chunks on runs of whitespace.
//
// Offsets are measured against the normalized text, not against text itself:
// a delimiter that is not a space shifts every following offset by two.
func Split(text string, delimiters []string) []Chunk {
	padded := Normalize(text, delimiters)
	fields := strings.Fields(padded)
	chunks := make([]Chunk, 0, len(fields))

	// cursor is a byte offset into padded. mark is the byte offset of the
	// last chunk found and runes its character offset.
	cursor, mark, runes := 0, 0, 0
	for _, field := range fields {
		found := cursor + strings.Index(padded[cursor:], field)
		runes += utf8.RuneCountInString(padded[mark:found])
		mark = found

		n := utf8.RuneCountInString(field)
		chunks = append(chunks, Chunk{Text: field, Start: runes, End: runes + n - 1})
		cursor = found + len(field) + 1
	}

	return chunks
}

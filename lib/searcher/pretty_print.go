package searcher

import (
	"fmt"
	"io"
	"strings"

	"github.com/cxxxr/wordgram/lib/tokenizer"
)

// lineAround returns the line of text containing pos.
func lineAround(text []rune, pos int) string {
	if pos < 0 || pos >= len(text) {
		return ""
	}
	start := pos
	for start > 0 && text[start-1] != '\n' {
		start--
	}
	end := pos
	for end < len(text) && text[end] != '\n' {
		end++
	}
	return string(text[start:end])
}

func printMatchedLine(result *Result, text []rune, writer io.Writer) {
	fmt.Fprintf(writer,
		"%s:%d:%d:%s\n",
		result.doc.Filename,
		result.span.Start,
		result.span.End,
		lineAround(text, result.span.Start),
	)
}

// PrintResults writes one line per result. Spans refer to the normalized
// document, so the line shown is taken from the normalized body too.
func PrintResults(results []*Result, delimiters []string, writer io.Writer) {
	normalized := make(map[string][]rune)
	for _, result := range results {
		text, ok := normalized[result.doc.Filename]
		if !ok {
			text = []rune(tokenizer.Normalize(strings.TrimSpace(result.doc.Body), delimiters))
			normalized[result.doc.Filename] = text
		}
		printMatchedLine(result, text, writer)
	}
}

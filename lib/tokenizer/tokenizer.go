package tokenizer

import (
	"io"
	"strings"

	"github.com/cxxxr/wordgram/lib/entity"
)

// Tokenizer holds a validated configuration and creates a fresh
// NgramWordTokenizer per input. Unlike the emitter it is safe to share.
type Tokenizer struct {
	opts options
}

func NewTokenizer(opts ...Option) (*Tokenizer, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{opts: o}, nil
}

func (t *Tokenizer) MinWords() int {
	return t.opts.minWords
}

func (t *Tokenizer) MaxWords() int {
	return t.opts.maxWords
}

func (t *Tokenizer) Delimiters() []string {
	return append([]string(nil), t.opts.delimiters...)
}

func (t *Tokenizer) Stream(input io.Reader) *NgramWordTokenizer {
	o := t.opts
	o.delimiters = t.Delimiters()
	return newWithOptions(input, o)
}

func (t *Tokenizer) Tokenize(text string) ([]entity.Token, error) {
	return Collect(t.Stream(strings.NewReader(text)))
}

// Chunks splits text the way a stream created by t would, without the read
// limit.
func (t *Tokenizer) Chunks(text string) []Chunk {
	return Split(strings.TrimSpace(text), t.opts.delimiters)
}

func Collect(t *NgramWordTokenizer) ([]entity.Token, error) {
	tokens := make([]entity.Token, 0)
	for tok, err := range t.All() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

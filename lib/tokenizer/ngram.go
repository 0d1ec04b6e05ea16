package tokenizer

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/cxxxr/wordgram/lib/entity"
)

var (
	ErrNoInput        = errors.New("tokenizer has no input")
	ErrAlreadyStarted = errors.New("tokenizer already started")
	ErrFailed         = errors.New("tokenizer failed on a previous read")
)

type state int

const (
	stateUninitialized state = iota
	stateEmitting
	stateExhausted
	stateFailed
)

// NgramWordTokenizer emits every run of minWords..maxWords consecutive
// chunks of its input. All grams of one size come before the next size, and
// grams of the same size overlap by all but one chunk.
//
// It is a forward-only cursor and must not be shared between goroutines.
type NgramWordTokenizer struct {
	input io.Reader
	options

	state    state
	chunks   []Chunk
	gramSize int
	pos      int
}

func New(input io.Reader, opts ...Option) (*NgramWordTokenizer, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return newWithOptions(input, o), nil
}

func NewWithSize(input io.Reader, minWords, maxWords int) (*NgramWordTokenizer, error) {
	return New(input, WithSize(minWords, maxWords))
}

func newWithOptions(input io.Reader, o options) *NgramWordTokenizer {
	return &NgramWordTokenizer{input: input, options: o}
}

func (t *NgramWordTokenizer) MinWords() int {
	return t.minWords
}

func (t *NgramWordTokenizer) MaxWords() int {
	return t.maxWords
}

// SetDelimiters replaces the delimiter list. It must be called before the
// first Next.
func (t *NgramWordTokenizer) SetDelimiters(delimiters []string) error {
	if t.state != stateUninitialized {
		return ErrAlreadyStarted
	}
	if err := validateDelimiters(delimiters); err != nil {
		return err
	}
	t.delimiters = append([]string(nil), delimiters...)
	return nil
}

func (t *NgramWordTokenizer) read() (string, error) {
	if t.input == nil {
		return "", ErrNoInput
	}

	if t.readLimit <= 0 {
		data, err := io.ReadAll(t.input)
		if err != nil {
			return "", errors.WithStack(err)
		}
		return string(data), nil
	}

	// An invalid byte counts as one character and is copied as is, so the
	// text matches what io.ReadAll would have returned.
	reader := bufio.NewReader(t.input)
	buf := make([]byte, 0, t.readLimit)
	for i := 0; i < t.readLimit; i++ {
		r, size, err := reader.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.WithStack(err)
		}
		if r == utf8.RuneError && size == 1 {
			reader.UnreadRune()
			b, _ := reader.ReadByte()
			buf = append(buf, b)
			continue
		}
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf), nil
}

func (t *NgramWordTokenizer) start() error {
	text, err := t.read()
	if err != nil {
		return err
	}
	t.chunks = Split(strings.TrimSpace(text), t.delimiters)
	t.gramSize = t.minWords
	t.pos = 0
	t.state = stateEmitting
	return nil
}

// Next fills slot with the next gram and returns it. It returns nil and a
// nil error once every gram has been emitted. A nil slot is allocated.
func (t *NgramWordTokenizer) Next(slot *entity.Token) (*entity.Token, error) {
	switch t.state {
	case stateUninitialized:
		if err := t.start(); err != nil {
			t.state = stateFailed
			return nil, err
		}
	case stateExhausted:
		return nil, nil
	case stateFailed:
		return nil, ErrFailed
	}

	if t.pos+t.gramSize > len(t.chunks) {
		t.pos = 0
		t.gramSize++
		if t.gramSize > t.maxWords || t.gramSize > len(t.chunks) {
			t.state = stateExhausted
			t.chunks = nil
			return nil, nil
		}
	}

	window := t.chunks[t.pos : t.pos+t.gramSize]
	var sb strings.Builder
	for i, chunk := range window {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(chunk.Text)
	}
	t.pos++

	if slot == nil {
		slot = entity.NewToken()
	}
	return slot.Reinit(sb.String(), window[0].Start, window[len(window)-1].End), nil
}

// All ranges over the remaining grams. Iteration stops after the first
// error, which is yielded with a zero Token.
func (t *NgramWordTokenizer) All() iter.Seq2[entity.Token, error] {
	return func(yield func(entity.Token, error) bool) {
		slot := entity.NewToken()
		for {
			tok, err := t.Next(slot)
			if err != nil {
				yield(entity.Token{}, err)
				return
			}
			if tok == nil {
				return
			}
			if !yield(*tok, nil) {
				return
			}
		}
	}
}

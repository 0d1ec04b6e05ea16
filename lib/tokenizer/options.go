package tokenizer

import (
	"github.com/pkg/errors"
)

const (
	DefaultMinNgramSize = 1
	DefaultMaxNgramSize = 2

	// DefaultReadLimit is the number of characters consumed from the input.
	// Anything past it is dropped without notice.
	DefaultReadLimit = 1024
)

var (
	ErrInvalidMinWords   = errors.New("minWordsInToken must be greater than zero")
	ErrMinGreaterThanMax = errors.New("minWordsInToken must not be greater than maxWordsInToken")
	ErrEmptyDelimiter    = errors.New("delimiter must not be empty")
)

type options struct {
	minWords   int
	maxWords   int
	delimiters []string
	readLimit  int
}

func defaultOptions() options {
	return options{
		minWords:   DefaultMinNgramSize,
		maxWords:   DefaultMaxNgramSize,
		delimiters: DefaultDelimiters(),
		readLimit:  DefaultReadLimit,
	}
}

type Option func(*options)

func WithMinWords(n int) Option {
	return func(o *options) { o.minWords = n }
}

func WithMaxWords(n int) Option {
	return func(o *options) { o.maxWords = n }
}

func WithSize(minWords, maxWords int) Option {
	return func(o *options) {
		o.minWords = minWords
		o.maxWords = maxWords
	}
}

func WithDelimiters(delimiters ...string) Option {
	return func(o *options) { o.delimiters = delimiters }
}

// WithReadLimit sets how many characters are read from the input.
// A limit of zero or less reads the input to the end.
func WithReadLimit(n int) Option {
	return func(o *options) { o.readLimit = n }
}

func validateDelimiters(delimiters []string) error {
	for i, d := range delimiters {
		if d == "" {
			return errors.Wrapf(ErrEmptyDelimiter, "delimiter #%d", i)
		}
	}
	return nil
}

func (o *options) validate() error {
	if o.minWords < 1 {
		return errors.Wrapf(ErrInvalidMinWords, "got %d", o.minWords)
	}
	if o.minWords > o.maxWords {
		return errors.Wrapf(ErrMinGreaterThanMax, "got %d > %d", o.minWords, o.maxWords)
	}
	return validateDelimiters(o.delimiters)
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return options{}, err
	}
	o.delimiters = append([]string(nil), o.delimiters...)
	return o, nil
}

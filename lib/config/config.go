package config

import (
	"bytes"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cxxxr/wordgram/lib/logger"
	"github.com/cxxxr/wordgram/lib/tokenizer"
)

type Tokenizer struct {
	MinWords   int      `yaml:"min_words" validate:"min=1"`
	MaxWords   int      `yaml:"max_words" validate:"gtefield=MinWords"`
	Delimiters []string `yaml:"delimiters" validate:"dive,required"`
	// ReadLimit of zero reads whole documents.
	ReadLimit int `yaml:"read_limit" validate:"min=0"`
}

type Log struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

type Config struct {
	Tokenizer Tokenizer `yaml:"tokenizer"`
	Log       Log       `yaml:"log"`
	Workers   int       `yaml:"workers" validate:"min=1"`
}

func Default() *Config {
	return &Config{
		Tokenizer: Tokenizer{
			MinWords:   tokenizer.DefaultMinNgramSize,
			MaxWords:   tokenizer.DefaultMaxNgramSize,
			Delimiters: tokenizer.DefaultDelimiters(),
			ReadLimit:  tokenizer.DefaultReadLimit,
		},
		Log: Log{
			Level: string(logger.InfoLevel),
		},
		Workers: 4,
	}
}

// Load reads a YAML file on top of Default. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "config: %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (c *Config) TokenizerOptions() []tokenizer.Option {
	return []tokenizer.Option{
		tokenizer.WithSize(c.Tokenizer.MinWords, c.Tokenizer.MaxWords),
		tokenizer.WithDelimiters(c.Tokenizer.Delimiters...),
		tokenizer.WithReadLimit(c.Tokenizer.ReadLimit),
	}
}

func (c *Config) NewTokenizer() (*tokenizer.Tokenizer, error) {
	return tokenizer.NewTokenizer(c.TokenizerOptions()...)
}

func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{Level: logger.Level(c.Log.Level), JSON: c.Log.JSON}
}

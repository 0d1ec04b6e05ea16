package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cxxxr/wordgram/lib/config"
	"github.com/cxxxr/wordgram/lib/logger"
)

type app struct {
	configFile string
	logLevel   string
	minWords   int
	maxWords   int
	delimiters []string
	readLimit  int

	cfg *config.Config
}

// load reads the config file and lets explicitly set flags override it.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("min") {
		cfg.Tokenizer.MinWords = a.minWords
	}
	if flags.Changed("max") {
		cfg.Tokenizer.MaxWords = a.maxWords
	}
	if flags.Changed("delimiter") {
		cfg.Tokenizer.Delimiters = a.delimiters
	}
	if flags.Changed("read-limit") {
		cfg.Tokenizer.ReadLimit = a.readLimit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lc := cfg.LoggerConfig()
	lc.Output = cmd.ErrOrStderr()
	logger.SetDefault(logger.New(lc))

	a.cfg = cfg
	return nil
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "wordgram",
		Short:         "Word n-gram tokenizer and gram index",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")
	flags.IntVar(&a.minWords, "min", 1, "minimum words per gram")
	flags.IntVar(&a.maxWords, "max", 2, "maximum words per gram")
	flags.StringArrayVar(&a.delimiters, "delimiter", nil, "delimiter string, repeatable (default \" \" and \",\")")
	flags.IntVar(&a.readLimit, "read-limit", 1024, "characters read per document, 0 for no limit")

	root.AddCommand(
		newTokenizeCommand(a),
		newIndexCommand(a),
		newSearchCommand(a),
		newDescribeCommand(a),
	)
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

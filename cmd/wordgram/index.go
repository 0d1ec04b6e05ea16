package main

import (
	"github.com/spf13/cobra"

	"github.com/cxxxr/wordgram/lib/indexer"
	"github.com/cxxxr/wordgram/lib/logger"
)

func newIndexCommand(a *app) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "index MANIFEST...",
		Short: "Index the documents listed in each manifest",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := a.cfg.NewTokenizer()
			if err != nil {
				return err
			}

			log := logger.Default().WithPrefix("Index")
			log.Info("start", "outputDir", outputDir, "manifests", len(args))

			return indexer.NewBulkIndexer(a.cfg.Workers, tk).
				WithLogger(log).
				Index(cmd.Context(), args, outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "output destination directory")
	return cmd
}

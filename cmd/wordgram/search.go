package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cxxxr/wordgram/lib/database"
	"github.com/cxxxr/wordgram/lib/searcher"
)

func requireDatabase(file string) error {
	if file == "" {
		return errors.New("database file is required (-d)")
	}
	if _, err := os.Stat(file); err != nil {
		return errors.Wrapf(err, "%s not found", file)
	}
	return nil
}

func newSearchCommand(a *app) *cobra.Command {
	var databaseFile string

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Find a gram in an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if err := requireDatabase(databaseFile); err != nil {
				return err
			}

			tk, err := a.cfg.NewTokenizer()
			if err != nil {
				return err
			}

			db := database.New(databaseFile)
			if err := db.Connect(); err != nil {
				return err
			}
			defer func() {
				err = db.Finish(err)
			}()

			results, err := searcher.NewGramSearcher(tk, db).Search(args[0])
			if err != nil {
				return err
			}

			searcher.PrintResults(results, tk.Delimiters(), cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVarP(&databaseFile, "database", "d", "", "database file")
	return cmd
}

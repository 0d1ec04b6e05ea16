package main

import (
	"github.com/spf13/cobra"

	"github.com/cxxxr/wordgram/lib/indexer"
)

func newDescribeCommand(_ *app) *cobra.Command {
	var databaseFile string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Dump the inverted index of a database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireDatabase(databaseFile); err != nil {
				return err
			}
			return indexer.DescribeInvertedIndex(databaseFile, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&databaseFile, "database", "d", "", "database file")
	return cmd
}

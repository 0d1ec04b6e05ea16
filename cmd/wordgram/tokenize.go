package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cxxxr/wordgram/lib/entity"
)

func newTokenizeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Print the grams of a file or of stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return errors.WithStack(err)
				}
				defer file.Close()
				input = file
			}

			tk, err := a.cfg.NewTokenizer()
			if err != nil {
				return err
			}

			stream := tk.Stream(input)
			out := cmd.OutOrStdout()
			slot := entity.NewToken()
			for {
				tok, err := stream.Next(slot)
				if err != nil {
					return err
				}
				if tok == nil {
					return nil
				}
				fmt.Fprintf(out, "%d\t%d\t%s\n", tok.Start, tok.End, tok.Term)
			}
		},
	}
}

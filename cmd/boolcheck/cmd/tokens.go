package cmd

import (
	"fmt"
	"os"

	"github.com/db47h/boolassign/report"
	"github.com/db47h/boolassign/scanner"
	"github.com/db47h/boolassign/token"
	"github.com/spf13/cobra"
)

func newTokensCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := o.load(cmd)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Input = args[0]
			}
			f, err := os.Open(cfg.Input)
			if err != nil {
				return err
			}
			defer f.Close()

			out := cmd.OutOrStdout()
			s := scanner.New(token.NewFile(cfg.Input, f), nil)
			for t, err := range s.All() {
				if err != nil {
					fmt.Fprintln(out, report.Format(err))
					if _, ok := report.Position(err); ok {
						return ErrRejected
					}
					return err
				}
				fmt.Fprintln(out, t)
			}
			return nil
		},
	}
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/faed235/hyperf-saas-helper/internal/tui/repl"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl [value]",
		Short: "Start the interactive calculator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := "0"
			if len(args) == 1 {
				initial = args[0]
			}
			return repl.Run(repl.Config{
				Calculator: a.calculator,
				Initial:    initial,
				Precision:  a.cfg.Output.Precision,
				RoundUp:    a.cfg.Output.RoundUp,
			})
		},
	}
}

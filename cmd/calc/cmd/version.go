package cmd

import (
	"github.com/spf13/cobra"

	"github.com/faed235/hyperf-saas-helper/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			return a.render(info, info.String())
		},
	}
}

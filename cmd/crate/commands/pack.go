package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack [projects...]",
		Short: "Build or refresh project archives",
		Long: "Build the archive of each named project, or of every project " +
			"in the workspace when no names are given. Archives whose inputs " +
			"have not changed are left untouched.",
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.PackArchives(args)
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dist <project>",
		Short: "Assemble a runnable distribution for a project",
		Long: "Resolve the project's transitive runtime dependencies, build " +
			"any stale archives, and assemble a distribution directory with " +
			"a lib/ folder and, when programs are requested, launcher " +
			"scripts under bin/.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			programs, _ := cmd.Flags().GetStringArray("program")
			output, _ := cmd.Flags().GetString("output")

			_, err := c.app.PackDistribution(args[0], programs, output)
			return err
		},
	}
	cmd.Flags().StringArrayP("program", "p", nil, "Launcher program as name:mainclass (repeatable)")
	cmd.Flags().StringP("output", "o", "", "Distribution root (default: <project-out>/dist)")
	return cmd
}

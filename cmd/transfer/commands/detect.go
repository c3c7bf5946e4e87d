package commands

import "github.com/spf13/cobra"

func (c *CLI) newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Report which engine generation backs resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Detect(cmd.Context(), cmd.OutOrStdout(), c.global)
		},
	}
}

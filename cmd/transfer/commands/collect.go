package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/transfer/internal/app"
	"go.trai.ch/transfer/internal/core/domain"
)

func (c *CLI) newCollectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect [coordinate]",
		Short: "Print the dependency graph without downloading artifacts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			if len(args) == 0 && project == "" {
				_ = cmd.Help()
				return nil
			}
			scope, _ := cmd.Flags().GetString("scope")
			format, _ := cmd.Flags().GetString("format")
			if format != app.FormatTree && format != app.FormatList {
				return domain.Annotate(domain.ErrUnknownFormat, "format", format)
			}

			opts := app.CollectOptions{
				GlobalOptions: c.global,
				Project:       project,
				Scope:         scope,
				Format:        format,
			}
			if len(args) == 1 {
				opts.Coordinate = args[0]
			}
			return c.app.Collect(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringP("project", "p", "", "Collect the dependencies declared in this pom.xml")
	cmd.Flags().StringP("scope", "s", "", "Collect the coordinate as a dependency of this scope")
	cmd.Flags().StringP("format", "f", app.FormatTree, "Output format: tree or list")
	return cmd
}

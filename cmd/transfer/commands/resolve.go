package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/transfer/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [coordinates...]",
		Short: "Download artifacts and their transitive dependencies",
		Long: "Download artifacts and their transitive dependencies.\n\n" +
			"Coordinates have the form groupId:artifactId:version[:type[:classifier]].",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")
			if len(args) == 0 && project == "" {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			scopes, _ := cmd.Flags().GetStringSlice("scope")
			excludes, _ := cmd.Flags().GetStringSlice("exclude")

			return c.app.Resolve(cmd.Context(), cmd.OutOrStdout(), app.ResolveOptions{
				GlobalOptions: c.global,
				Coordinates:   args,
				Project:       project,
				Scopes:        scopes,
				Excludes:      excludes,
			})
		},
	}
	cmd.Flags().StringP("project", "p", "", "Resolve the dependencies declared in this pom.xml")
	cmd.Flags().StringSliceP("scope", "s", nil, "Only include dependencies of these scopes")
	cmd.Flags().StringSliceP("exclude", "x", nil, "Exclude groupId:artifactId from the result")
	return cmd
}

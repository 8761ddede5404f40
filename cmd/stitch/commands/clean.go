package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stitch/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the workspace cache and build outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetBool("output")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{}

			switch {
			case all:
				opts.Cache = true
				opts.Output = true
			case output:
				opts.Output = true
			default:
				// Default behavior: clean the workspace cache.
				opts.Cache = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("output", "o", false, "Clean target output directories")
	cmd.Flags().BoolP("all", "a", false, "Clean the cache and all target outputs")

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stitch/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [entries...]",
		Short: "Build bundles for all configured targets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			workers, _ := cmd.Flags().GetInt("workers")
			keepWorkers, _ := cmd.Flags().GetBool("keep-workers")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				Root:        root,
				Entries:     args,
				Workers:     workers,
				KeepWorkers: keepWorkers,
			})
		},
	}
	cmd.Flags().StringP("root", "r", "", "Project root (defaults to the working directory)")
	cmd.Flags().IntP("workers", "w", 0, "Packaging worker count (0 = number of CPUs)")
	cmd.Flags().Bool("keep-workers", false, "Keep the worker pool alive after the build")
	return cmd
}

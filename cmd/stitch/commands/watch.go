package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stitch/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [entries...]",
		Short: "Build, then rebuild on file changes",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			workers, _ := cmd.Flags().GetInt("workers")
			serve, _ := cmd.Flags().GetBool("serve")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				BuildOptions: app.BuildOptions{
					Root:    root,
					Entries: args,
					Workers: workers,
				},
				DevServer: serve,
			})
		},
	}
	cmd.Flags().StringP("root", "r", "", "Project root (defaults to the working directory)")
	cmd.Flags().IntP("workers", "w", 0, "Packaging worker count (0 = number of CPUs)")
	cmd.Flags().BoolP("serve", "s", false, "Serve build output and push live-reload events")
	return cmd
}

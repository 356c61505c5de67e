package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/visit/internal/app"
)

func (c *CLI) newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Run a client session that keeps engines alive until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hosts, _ := cmd.Flags().GetStringSlice("host")
			watch, _ := cmd.Flags().GetString("watch")
			metrics, _ := cmd.Flags().GetString("metrics")

			return c.app.RunSession(cmd.Context(), app.SessionOptions{
				Hosts:       hosts,
				Watch:       watch,
				MetricsAddr: metrics,
			})
		},
	}
	cmd.Flags().StringSlice("host", nil, "Start an engine on this host (repeatable)")
	cmd.Flags().String("watch", "", "Invalidate cached metadata when files below this directory change")
	cmd.Flags().String("metrics", "", "Serve Prometheus metrics on this address")
	return cmd
}

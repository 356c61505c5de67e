package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/visit/internal/app"
	"go.trai.ch/visit/internal/core/domain"
)

func (c *CLI) newEngineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "engine",
		Short: "Run engine processes",
	}

	cmd.AddCommand(c.newEngineServeCmd())

	return cmd
}

func (c *CLI) newEngineServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "serve [-- engine arguments]",
		Short:  "Serve engine or metadata server calls (started by launchers)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			listen, _ := cmd.Flags().GetString("listen")
			key, _ := cmd.Flags().GetString("key")
			role, _ := cmd.Flags().GetString("role")
			idle, _ := cmd.Flags().GetDuration("idle-timeout")
			procs, _ := cmd.Flags().GetInt("procs")

			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Listen:      listen,
				Key:         key,
				Role:        role,
				IdleTimeout: idle,
				Procs:       procs,
				Args:        args,
			})
		},
	}
	cmd.Flags().String("listen", "127.0.0.1:0", "Address to listen on")
	cmd.Flags().String("key", "", "Security key clients must present")
	cmd.Flags().String("role", domain.RoleEngine, "Process role: engine or mdserver")
	cmd.Flags().Duration("idle-timeout", 0, "Exit after this long without calls (0 disables)")
	cmd.Flags().Int("procs", 1, "Number of ranks")
	return cmd
}

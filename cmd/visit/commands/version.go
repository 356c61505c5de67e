package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/visit/internal/build"
	"go.trai.ch/visit/internal/core/domain"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "visit version %s (commit: %s, date: %s, protocol: %s)\n",
				build.Version, build.Commit, build.Date, domain.ProtocolVersion)
		},
	}
}

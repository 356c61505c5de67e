package commands

import (
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/visit/internal/app"
)

func (c *CLI) newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [host:]dir",
		Short: "List a directory through the metadata server of its host",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			filter, _ := cmd.Flags().GetString("filter")

			list, err := c.app.List(cmd.Context(), target, app.ListOptions{Filter: filter})
			if err != nil {
				return err
			}
			return c.printResult(cmd.OutOrStdout(), list, func(w io.Writer) { printFileList(w, list) })
		},
	}
	cmd.Flags().StringP("filter", "f", "", `Space-separated file patterns, for example "*.csv *.txt"`)
	return cmd
}

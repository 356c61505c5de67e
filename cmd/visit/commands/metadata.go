package commands

import (
	"io"

	"github.com/spf13/cobra"
)

func (c *CLI) newMetaDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata [host:]file",
		Short: "Show the metadata and SIL of a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, _ := cmd.Flags().GetInt("state")

			info, err := c.app.MetaData(cmd.Context(), args[0], state)
			if err != nil {
				return err
			}
			return c.printResult(cmd.OutOrStdout(), info, func(w io.Writer) {
				printFileInfo(w, info.File, info.MetaData, info.SIL)
			})
		},
	}
	cmd.Flags().IntP("state", "s", 0, "Time state to read")
	return cmd
}

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/visit/internal/app"
	"go.trai.ch/visit/internal/core/domain"
)

func (c *CLI) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query host file variable",
		Short: "Run a named query on one variable of a database",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			state, _ := cmd.Flags().GetInt("state")

			res, err := c.app.Query(cmd.Context(), app.QueryOptions{
				Host:      args[0],
				File:      args[1],
				Variable:  args[2],
				Name:      name,
				TimeState: state,
			})
			if err != nil {
				return err
			}
			return c.printResult(cmd.OutOrStdout(), res, func(w io.Writer) {
				_, _ = fmt.Fprintln(w, res.Message)
			})
		},
	}
	cmd.Flags().StringP("name", "n", domain.QueryMax, "Query name: NumRows, Min, Max, or Sum")
	cmd.Flags().IntP("state", "s", 0, "Time state to query")
	return cmd
}

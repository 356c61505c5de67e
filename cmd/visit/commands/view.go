package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/visit/internal/ui/style"
)

func (c *CLI) newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Compute camera transforms and visible domains",
	}

	cmd.AddCommand(c.newViewTransformCmd())
	cmd.AddCommand(c.newViewCullCmd())

	return cmd
}

func (c *CLI) newViewTransformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transform VIEW",
		Short: "Print the world-to-clip matrix of a view file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Transform(args[0])
			if err != nil {
				return err
			}
			return c.printResult(cmd.OutOrStdout(), res, func(w io.Writer) {
				for row := range 4 {
					_, _ = fmt.Fprintf(w, "%12.6f %12.6f %12.6f %12.6f\n",
						res.Matrix.At(row, 0), res.Matrix.At(row, 1), res.Matrix.At(row, 2), res.Matrix.At(row, 3))
				}
				if res.Tightened {
					_, _ = fmt.Fprintln(w, style.Dim.Render(fmt.Sprintf("clipping planes tightened to [%g, %g]",
						res.View.NearPlane, res.View.FarPlane)))
				}
			})
		},
	}
}

func (c *CLI) newViewCullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cull VIEW EXTENTS",
		Short: "Print the domains of an extents file visible from a view",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			domains, err := c.app.Cull(args[0], args[1])
			if err != nil {
				return err
			}
			return c.printResult(cmd.OutOrStdout(), domains, func(w io.Writer) {
				_, _ = fmt.Fprintln(w, joinInts(domains))
			})
		},
	}
}

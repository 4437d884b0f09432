package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/inter-go/inter/rounding"
)

func newRoundingCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rounding",
		Short: "Shows z1 = (1 - 1e-20) - 1 and z2 = (1e-20 - 1) + 1 under each rounding mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := rounding.NewController(nil)
			out := cmd.OutOrStdout()
			if err := printCancellation[float32](out, c, "float32"); err != nil {
				return err
			}
			fmt.Fprintln(out)
			if err := printCancellation[float64](out, c, "float64"); err != nil {
				return err
			}
			mode, err := c.Current()
			if err != nil {
				return err
			}
			opts.log.Printf("rounding mode after the demonstration: %s", mode)
			return nil
		},
	}
}

func printCancellation[T constraints.Float](out io.Writer, c *rounding.Controller, name string) error {

	fmt.Fprintln(out, color.New(color.Bold).Sprint(name))

	for _, mode := range rounding.Modes {

		var z1, z2 T

		err := c.Do(mode, func() error {
			one, tiny := T(1), T(1e-20)
			z1 = rounding.Sub(c, rounding.Sub(c, one, tiny), one)
			z2 = rounding.Add(c, rounding.Sub(c, tiny, one), one)
			return nil
		})

		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%-12s z1 = %17.10e, z2 = %17.10e\n", mode, z1, z2)
	}

	return nil
}

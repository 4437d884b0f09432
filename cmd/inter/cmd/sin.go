package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/inter-go/inter/elementary"
	"github.com/inter-go/inter/interval"
	"github.com/inter-go/inter/utils/bignum"
)

func newSinCommand(opts *options) *cobra.Command {

	var center, epsilon string

	cmd := &cobra.Command{
		Use:   "sin",
		Short: "Encloses the sine recurrence on [center-epsilon, center+epsilon]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.float32() {
				return runSin[float32](cmd, opts, center, epsilon)
			}
			return runSin[float64](cmd, opts, center, epsilon)
		},
	}

	cmd.Flags().StringVar(&center, "center", "0.785", "center of the input interval")
	cmd.Flags().StringVar(&epsilon, "epsilon", "0.02", "half width of the input interval")

	return cmd
}

func runSin[T constraints.Float](cmd *cobra.Command, opts *options, center, epsilon string) error {

	c, err := parseFloat[T](center)
	if err != nil {
		return err
	}

	e, err := parseFloat[T](epsilon)
	if err != nil {
		return err
	}

	x, err := interval.WithEpsilon(c, e)
	if err != nil {
		return err
	}

	params, err := opts.sineParameters()
	if err != nil {
		return err
	}

	eval := elementary.NewSineEvaluator(interval.NewEvaluator[T](nil), params)

	opts.log.Printf("sin(%v): %d iterations on %s", x, params.Iterations(), opts.precision)
	now := time.Now()

	r, err := eval.Sin(x)
	if err != nil {
		return err
	}

	opts.log.Printf("sin(%v): done in %s", x, time.Since(now))

	ref := bignum.ReferenceSin(float64(c))

	status := color.GreenString("yes")
	if !bignum.Encloses(float64(r.Start()), float64(r.End()), ref) {
		status = color.RedString("no")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "x         = %v\n", x)
	fmt.Fprintf(out, "sin(x)    = %s\n", color.CyanString("%v", r))
	fmt.Fprintf(out, "width     = %v\n", r.Width())
	fmt.Fprintf(out, "math.Sin  = %v\n", math.Sin(float64(c)))
	fmt.Fprintf(out, "reference = %s\n", ref.Text('g', 20))
	fmt.Fprintf(out, "enclosed  = %s\n", status)

	return nil
}

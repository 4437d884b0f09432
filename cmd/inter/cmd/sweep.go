package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/inter-go/inter/elementary"
	"github.com/inter-go/inter/interval"
	"github.com/inter-go/inter/utils/bignum"
)

type sweepOptions struct {
	from, to float64
	epsilon  float64
	steps    int
}

func newSweepCommand(opts *options) *cobra.Command {

	sweep := sweepOptions{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluates the sine enclosure on steps+1 centers between from and to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sweep.steps < 1 {
				return fmt.Errorf("invalid steps %d: must be at least 1", sweep.steps)
			}
			if !(sweep.from <= sweep.to) {
				return fmt.Errorf("invalid range [%v, %v]", sweep.from, sweep.to)
			}
			if opts.float32() {
				return runSweep[float32](cmd, opts, sweep)
			}
			return runSweep[float64](cmd, opts, sweep)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&sweep.from, "from", 0.1, "first center")
	flags.Float64Var(&sweep.to, "to", 0.8, "last center")
	flags.Float64Var(&sweep.epsilon, "epsilon", 0.01, "half width of each input interval")
	flags.IntVar(&sweep.steps, "steps", 7, "number of subdivisions of [from, to]")

	return cmd
}

func runSweep[T constraints.Float](cmd *cobra.Command, opts *options, sweep sweepOptions) error {

	params, err := opts.sineParameters()
	if err != nil {
		return err
	}

	eval := elementary.NewSineEvaluator(interval.NewEvaluator[T](nil), params)

	widths := make(stats.Float64Data, 0, sweep.steps+1)
	var misses int

	for k := 0; k <= sweep.steps; k++ {

		c := T(sweep.from + (sweep.to-sweep.from)*float64(k)/float64(sweep.steps))

		x, err := interval.WithEpsilon(c, T(sweep.epsilon))
		if err != nil {
			return err
		}

		r, err := eval.Sin(x)
		if err != nil {
			return err
		}

		if !bignum.Encloses(float64(r.Start()), float64(r.End()), bignum.ReferenceSin(float64(c))) {
			misses++
			opts.log.Printf("sin(%v) is not in %v", c, r)
		} else {
			opts.log.Printf("sin(%v) in %v", c, r)
		}

		widths = append(widths, float64(r.Width()))
	}

	mean, err := stats.Mean(widths)
	if err != nil {
		return err
	}

	median, err := stats.Median(widths)
	if err != nil {
		return err
	}

	max, err := stats.Max(widths)
	if err != nil {
		return err
	}

	status := color.GreenString("%d", misses)
	if misses > 0 {
		status = color.RedString("%d", misses)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "centers   = %d\n", len(widths))
	fmt.Fprintf(out, "mean      = %.6e\n", mean)
	fmt.Fprintf(out, "median    = %.6e\n", median)
	fmt.Fprintf(out, "max       = %.6e\n", max)
	fmt.Fprintf(out, "misses    = %s\n", status)

	return nil
}

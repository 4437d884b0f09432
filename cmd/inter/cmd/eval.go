package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/inter-go/inter/interval"
)

var operators = map[string]string{
	"add": "+",
	"sub": "-",
	"mul": "*",
	"div": "/",
}

func newEvalCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval OP A B [C D]",
		Short: "Evaluates [A, B] OP [C, D], or -[A, B] for OP neg",
		Long: `Evaluates one operation on intervals with outward rounding.

Operations:
  add A B C D  - [A, B] + [C, D]
  sub A B C D  - [A, B] - [C, D]
  mul A B C D  - [A, B] * [C, D]
  div A B C D  - [A, B] / [C, D]
  neg A B      - -[A, B]`,
		Args: cobra.RangeArgs(3, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.float32() {
				return runEval[float32](cmd, opts, args[0], args[1:])
			}
			return runEval[float64](cmd, opts, args[0], args[1:])
		},
	}
}

func runEval[T constraints.Float](cmd *cobra.Command, opts *options, op string, args []string) error {

	symbol, binary := operators[op]

	switch {
	case op == "neg" && len(args) != 2:
		return fmt.Errorf("neg takes 2 bounds, got %d", len(args))
	case binary && len(args) != 4:
		return fmt.Errorf("%s takes 4 bounds, got %d", op, len(args))
	case op != "neg" && !binary:
		return fmt.Errorf("unknown operation %q", op)
	}

	bounds, err := parseFloats[T](args)
	if err != nil {
		return err
	}

	a, err := interval.WithRange(bounds[0], bounds[1])
	if err != nil {
		return err
	}

	eval := interval.NewEvaluator[T](nil)
	out := cmd.OutOrStdout()

	if !binary {
		fmt.Fprintf(out, "-%v = %s\n", a, color.CyanString("%v", eval.Neg(a)))
		return nil
	}

	b, err := interval.WithRange(bounds[2], bounds[3])
	if err != nil {
		return err
	}

	var r interval.Interval[T]

	switch op {
	case "add":
		r, err = eval.Add(a, b)
	case "sub":
		r, err = eval.Sub(a, b)
	case "mul":
		r, err = eval.Mul(a, b)
	case "div":
		r, err = eval.Div(a, b)
	}

	if err != nil {
		return err
	}

	opts.log.Printf("%s: width %v", op, r.Width())

	fmt.Fprintf(out, "%v %s %v = %s\n", a, symbol, b, color.CyanString("%v", r))

	return nil
}

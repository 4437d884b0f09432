// Package elementary implements enclosures of elementary functions built
// on the interval arithmetic of package interval.
package elementary

import (
	"fmt"

	"github.com/inter-go/inter/interval"
	"github.com/inter-go/inter/rounding"
	"github.com/inter-go/inter/utils"
	"golang.org/x/exp/constraints"
)

// SineEvaluator evaluates the sine recurrence on intervals.
type SineEvaluator[T constraints.Float] struct {
	*interval.Evaluator[T]
	params SineParameters
}

// NewSineEvaluator instantiates a new SineEvaluator from an interval.Evaluator.
func NewSineEvaluator[T constraints.Float](eval *interval.Evaluator[T], params SineParameters) *SineEvaluator[T] {
	return &SineEvaluator[T]{Evaluator: eval, params: params}
}

// Parameters returns the parameters of the evaluator.
func (eval SineEvaluator[T]) Parameters() SineParameters {
	return eval.params
}

// ShallowCopy creates a copy of the SineEvaluator that can be used
// concurrently with the original one.
func (eval SineEvaluator[T]) ShallowCopy() *SineEvaluator[T] {
	return NewSineEvaluator[T](eval.Evaluator.ShallowCopy(), eval.params)
}

// Sin evaluates on x the recurrence
//
//	acc_0 = x
//	acc_i = acc_{i-1} * x^2/(2i(2i+1)) + acc_{i-1}   (i even)
//	acc_i = acc_{i-1} * x^2/(2i(2i+1)) - acc_{i-1}   (i odd)
//
// for i = 1, ..., Iterations-1, and clamps both bounds of the result to
// [-1, 1]. All steps run, there is no convergence test.
//
// The result encloses the exact value of the recurrence. The recurrence
// tracks sin only near the origin and on part of [0, pi/2], for
// instance around pi/4.
func (eval SineEvaluator[T]) Sin(x interval.Interval[T]) (interval.Interval[T], error) {

	x2, err := eval.Mul(x, x)
	if err != nil {
		return interval.Interval[T]{}, fmt.Errorf("cannot Sin: %w", err)
	}

	acc := x

	var d, f, p interval.Interval[T]

	for i := 1; i < eval.params.iterations; i++ {

		if d, err = eval.divisor(int64(2*i) * int64(2*i+1)); err != nil {
			return interval.Interval[T]{}, fmt.Errorf("cannot Sin: iteration %d: %w", i, err)
		}

		if f, err = eval.Div(x2, d); err != nil {
			return interval.Interval[T]{}, fmt.Errorf("cannot Sin: iteration %d: %w", i, err)
		}

		if p, err = eval.Mul(acc, f); err != nil {
			return interval.Interval[T]{}, fmt.Errorf("cannot Sin: iteration %d: %w", i, err)
		}

		if i&1 == 0 {
			acc, err = eval.Add(p, acc)
		} else {
			acc, err = eval.Sub(p, acc)
		}

		if err != nil {
			return interval.Interval[T]{}, fmt.Errorf("cannot Sin: iteration %d: %w", i, err)
		}
	}

	return interval.WithRange(utils.Clamp(acc.Start(), -1, 1), utils.Clamp(acc.End(), -1, 1))
}

// divisor returns the tightest interval of T enclosing n.
// It is [n, n] whenever n is representable in T.
func (eval SineEvaluator[T]) divisor(n int64) (interval.Interval[T], error) {

	rnd := eval.Rounding()

	lo, err := rounding.Execute(rnd, rounding.Downward, func() T { return rounding.FromInt[T](rnd, n) })
	if err != nil {
		return interval.Interval[T]{}, err
	}

	hi, err := rounding.Execute(rnd, rounding.Upward, func() T { return rounding.FromInt[T](rnd, n) })
	if err != nil {
		return interval.Interval[T]{}, err
	}

	return interval.WithRange(lo, hi)
}

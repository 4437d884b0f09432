package interval

import (
	"fmt"

	"github.com/inter-go/inter/rounding"
	"github.com/inter-go/inter/utils"
	"golang.org/x/exp/constraints"
)

// Evaluator evaluates the arithmetic operations on intervals.
// Every lower bound is computed with rounding toward -inf and every upper
// bound with rounding toward +inf, each inside its own rounding.Execute
// scope of the underlying rounding.Controller.
//
// An Evaluator is not safe for concurrent use, see ShallowCopy.
type Evaluator[T constraints.Float] struct {
	rnd *rounding.Controller
}

// NewEvaluator creates a new Evaluator driving rnd.
// A nil rnd selects a new rounding.Controller over a software register.
func NewEvaluator[T constraints.Float](rnd *rounding.Controller) *Evaluator[T] {
	if rnd == nil {
		rnd = rounding.NewController(nil)
	}
	return &Evaluator[T]{rnd: rnd}
}

// ShallowCopy creates a copy of the Evaluator with its own rounding
// controller, so that the two evaluators can be used concurrently.
func (eval Evaluator[T]) ShallowCopy() *Evaluator[T] {
	return &Evaluator[T]{rnd: eval.rnd.ShallowCopy()}
}

// Rounding returns the rounding controller of the Evaluator.
func (eval Evaluator[T]) Rounding() *rounding.Controller {
	return eval.rnd
}

// Add returns [a.start + b.start, a.end + b.end].
func (eval Evaluator[T]) Add(a, b Interval[T]) (Interval[T], error) {
	r, err := eval.enclose(
		func() T { return rounding.Add(eval.rnd, a.start, b.start) },
		func() T { return rounding.Add(eval.rnd, a.end, b.end) })
	if err != nil {
		return Interval[T]{}, fmt.Errorf("cannot Add: %w", err)
	}
	return r, nil
}

// Sub returns [a.start - b.end, a.end - b.start].
func (eval Evaluator[T]) Sub(a, b Interval[T]) (Interval[T], error) {
	r, err := eval.enclose(
		func() T { return rounding.Sub(eval.rnd, a.start, b.end) },
		func() T { return rounding.Sub(eval.rnd, a.end, b.start) })
	if err != nil {
		return Interval[T]{}, fmt.Errorf("cannot Sub: %w", err)
	}
	return r, nil
}

// Neg returns [-a.end, -a.start]. Negation is exact.
func (eval Evaluator[T]) Neg(a Interval[T]) Interval[T] {
	return Interval[T]{start: -a.end, end: -a.start}
}

// Mul returns the smallest interval enclosing the four products of the
// bounds of a and b. A product with a zero factor is zero, infinite
// bounds included.
func (eval Evaluator[T]) Mul(a, b Interval[T]) (Interval[T], error) {

	product := func(x, y T) T {
		if x == 0 || y == 0 {
			return 0
		}
		return rounding.Mul(eval.rnd, x, y)
	}

	r, err := eval.enclose(
		func() T { return lowest(corners(product, a, b)) },
		func() T { return highest(corners(product, a, b)) })
	if err != nil {
		return Interval[T]{}, fmt.Errorf("cannot Mul: %w", err)
	}
	return r, nil
}

// Div returns the smallest interval enclosing the four quotients of the
// bounds of a by the bounds of b.
// It returns ErrDivisionByZero if b contains zero.
func (eval Evaluator[T]) Div(a, b Interval[T]) (Interval[T], error) {

	if b.Contains(0) {
		return Interval[T]{}, fmt.Errorf("cannot Div: %w: %v / %v", ErrDivisionByZero, a, b)
	}

	quotient := func(x, y T) T {
		return rounding.Quo(eval.rnd, x, y)
	}

	r, err := eval.enclose(
		func() T { return lowest(corners(quotient, a, b)) },
		func() T { return highest(corners(quotient, a, b)) })
	if err != nil {
		return Interval[T]{}, fmt.Errorf("cannot Div: %w", err)
	}
	return r, nil
}

// Scale returns a * [k, k].
func (eval Evaluator[T]) Scale(a Interval[T], k T) (Interval[T], error) {
	kk, err := Exact(k)
	if err != nil {
		return Interval[T]{}, fmt.Errorf("cannot Scale: %w", err)
	}
	return eval.Mul(a, kk)
}

// enclose evaluates lower under rounding toward -inf and upper under
// rounding toward +inf and checks that the result is a valid interval.
func (eval Evaluator[T]) enclose(lower, upper func() T) (Interval[T], error) {

	start, err := rounding.Execute(eval.rnd, rounding.Downward, lower)
	if err != nil {
		return Interval[T]{}, err
	}

	end, err := rounding.Execute(eval.rnd, rounding.Upward, upper)
	if err != nil {
		return Interval[T]{}, err
	}

	return WithRange(start, end)
}

// corners returns op evaluated on the four pairs of bounds of a and b.
func corners[T constraints.Float](op func(x, y T) T, a, b Interval[T]) [4]T {
	return [4]T{
		op(a.start, b.start),
		op(a.start, b.end),
		op(a.end, b.start),
		op(a.end, b.end),
	}
}

func lowest[T constraints.Float](c [4]T) T {
	return utils.MinOf(c[0], c[1], c[2], c[3])
}

func highest[T constraints.Float](c [4]T) T {
	return utils.MaxOf(c[0], c[1], c[2], c[3])
}

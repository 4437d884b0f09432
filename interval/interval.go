// Package interval implements closed intervals of floating-point numbers
// and their arithmetic with directed rounding, so that the result of every
// operation is a rigorous enclosure of the exact result.
package interval

import (
	"fmt"

	"github.com/inter-go/inter/utils"
	"golang.org/x/exp/constraints"
)

// Interval is the closed range [start, end] of values of T.
// A valid Interval always satisfies start <= end; the only way to
// build one is through WithRange, WithEpsilon, Exact or an Evaluator.
//
// Interval is an immutable value type and can be compared with ==.
type Interval[T constraints.Float] struct {
	start, end T
}

// WithRange creates the interval [start, end].
// It returns ErrInvalidRange when start > end or when a bound is NaN.
func WithRange[T constraints.Float](start, end T) (Interval[T], error) {
	if !(start <= end) {
		return Interval[T]{}, fmt.Errorf("cannot WithRange: %w: [%v, %v]", ErrInvalidRange, start, end)
	}
	return Interval[T]{start: start, end: end}, nil
}

// WithEpsilon creates the interval [center - epsilon, center + epsilon].
// A negative epsilon returns ErrInvalidRange.
func WithEpsilon[T constraints.Float](center, epsilon T) (Interval[T], error) {
	return WithRange(center-epsilon, center+epsilon)
}

// Exact creates the zero-width interval [value, value].
func Exact[T constraints.Float](value T) (Interval[T], error) {
	return WithRange(value, value)
}

// MustWithRange is as WithRange but panics on error.
func MustWithRange[T constraints.Float](start, end T) Interval[T] {
	return must(WithRange(start, end))
}

// MustWithEpsilon is as WithEpsilon but panics on error.
func MustWithEpsilon[T constraints.Float](center, epsilon T) Interval[T] {
	return must(WithEpsilon(center, epsilon))
}

// MustExact is as Exact but panics on error.
func MustExact[T constraints.Float](value T) Interval[T] {
	return must(Exact(value))
}

func must[T constraints.Float](x Interval[T], err error) Interval[T] {
	if err != nil {
		panic(err)
	}
	return x
}

// Zero returns [0, 0].
func Zero[T constraints.Float]() Interval[T] {
	return Interval[T]{}
}

// One returns [1, 1].
func One[T constraints.Float]() Interval[T] {
	return Interval[T]{start: 1, end: 1}
}

// Start returns the lower bound.
func (x Interval[T]) Start() T {
	return x.start
}

// End returns the upper bound.
func (x Interval[T]) End() T {
	return x.end
}

// IsZero returns true if x is [0, 0].
func (x Interval[T]) IsZero() bool {
	return x.start == 0 && x.end == 0
}

// Contains returns true if start <= value <= end.
func (x Interval[T]) Contains(value T) bool {
	return x.start <= value && value <= x.end
}

// Width returns end - start.
func (x Interval[T]) Width() T {
	return x.end - x.start
}

// Center returns the midpoint (start + end) / 2.
// The midpoint is computed with the native arithmetic of T.
func (x Interval[T]) Center() T {
	return (x.start + x.end) / 2
}

// Epsilon returns half of the width.
func (x Interval[T]) Epsilon() T {
	return x.Width() / 2
}

// Intersection returns the overlap of x and other, and false if the two
// intervals are disjoint.
func (x Interval[T]) Intersection(other Interval[T]) (Interval[T], bool) {
	low := utils.Max(x.start, other.start)
	high := utils.Min(x.end, other.end)
	if low > high {
		return Interval[T]{}, false
	}
	return Interval[T]{start: low, end: high}, true
}

// Hull returns the smallest interval containing both x and other.
func (x Interval[T]) Hull(other Interval[T]) Interval[T] {
	return Interval[T]{
		start: utils.Min(x.start, other.start),
		end:   utils.Max(x.end, other.end),
	}
}

// Equal returns true if x and other have the same bounds.
func (x Interval[T]) Equal(other Interval[T]) bool {
	return x.start == other.start && x.end == other.end
}

// String returns the textual form "[start, end]".
func (x Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", x.start, x.end)
}

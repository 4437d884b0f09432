package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum of a and b.
// If the two values are unordered (NaN), b is returned.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum of a and b.
// If the two values are unordered (NaN), b is returned.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// MinOf returns the minimum of the input values, folded from left to right with Min.
func MinOf[V constraints.Ordered](first V, others ...V) (min V) {
	min = first
	for _, v := range others {
		min = Min(min, v)
	}
	return
}

// MaxOf returns the maximum of the input values, folded from left to right with Max.
func MaxOf[V constraints.Ordered](first V, others ...V) (max V) {
	max = first
	for _, v := range others {
		max = Max(max, v)
	}
	return
}

// Clamp returns x restricted to [lo, hi].
func Clamp[V constraints.Ordered](x, lo, hi V) V {
	return Min(Max(x, lo), hi)
}

package rounding

import (
	"math"
	"math/big"
	"unsafe"

	"golang.org/x/exp/constraints"
)

type operation int

const (
	add operation = iota
	sub
	mul
	quo
)

// Add returns x+y rounded in the active direction of c.
func Add[T constraints.Float](c *Controller, x, y T) T {
	return apply(c, add, x, y)
}

// Sub returns x-y rounded in the active direction of c.
func Sub[T constraints.Float](c *Controller, x, y T) T {
	return apply(c, sub, x, y)
}

// Mul returns x*y rounded in the active direction of c.
func Mul[T constraints.Float](c *Controller, x, y T) T {
	return apply(c, mul, x, y)
}

// Quo returns x/y rounded in the active direction of c.
// A zero divisor yields the IEEE 754 result (±Inf or NaN).
func Quo[T constraints.Float](c *Controller, x, y T) T {
	return apply(c, quo, x, y)
}

// FromInt returns n converted to T, rounded in the active direction of c.
func FromInt[T constraints.Float](c *Controller, n int64) T {
	c.z.SetPrec(precision[T]()).SetMode(c.active())
	c.z.SetInt64(n)
	return toFloat[T](&c.z)
}

// apply evaluates the operation exactly rounded at the precision of T.
// Operands are always representable on 53 bits, so loading them is exact.
func apply[T constraints.Float](c *Controller, op operation, x, y T) T {

	fx, fy := float64(x), float64(y)

	if !isFinite(fx) || !isFinite(fy) || (op == quo && fy == 0) {
		return native(op, x, y)
	}

	c.x.SetPrec(53).SetFloat64(fx)
	c.y.SetPrec(53).SetFloat64(fy)
	c.z.SetPrec(precision[T]()).SetMode(c.active())

	switch op {
	case add:
		c.z.Add(&c.x, &c.y)
	case sub:
		c.z.Sub(&c.x, &c.y)
	case mul:
		c.z.Mul(&c.x, &c.y)
	case quo:
		c.z.Quo(&c.x, &c.y)
	}

	return toFloat[T](&c.z)
}

func native[T constraints.Float](op operation, x, y T) T {
	switch op {
	case add:
		return x + y
	case sub:
		return x - y
	case mul:
		return x * y
	default:
		return x / y
	}
}

// toFloat converts z, which already carries the precision of T, to T.
// The conversion rounds to nearest when z leaves the exponent range of T
// (overflow, subnormals); the result is then moved by one ulp so that it
// lies on the side of z requested by the rounding mode of z.
func toFloat[T constraints.Float](z *big.Float) T {
	if is32[T]() {
		f, acc := z.Float32()
		return T(directed(f, acc, z.Mode(), math.Nextafter32))
	}
	f, acc := z.Float64()
	return T(directed(f, acc, z.Mode(), math.Nextafter))
}

func directed[F float32 | float64](f F, acc big.Accuracy, mode big.RoundingMode, next func(x, y F) F) F {
	switch {
	case mode == big.ToNegativeInf && acc == big.Above:
		return next(f, F(math.Inf(-1)))
	case mode == big.ToPositiveInf && acc == big.Below:
		return next(f, F(math.Inf(1)))
	case mode == big.ToZero && ((acc == big.Above && f > 0) || (acc == big.Below && f < 0)):
		return next(f, 0)
	}
	return f
}

func precision[T constraints.Float]() uint {
	if is32[T]() {
		return 24
	}
	return 53
}

func is32[T constraints.Float]() bool {
	var v T
	return unsafe.Sizeof(v) == 4
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

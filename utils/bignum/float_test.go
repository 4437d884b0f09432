package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Sin", 1.4142135623730951, math.Sin, Sin, 1e-15, t)
	testFunc1("Cos", 1.4142135623730951, math.Cos, Cos, 1e-15, t)
	testFunc1("SinQuarter", 0.785, math.Sin, Sin, 1e-15, t)
	testFunc1("SinNegative", -0.3, math.Sin, Sin, 1e-15, t)
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

func TestReferenceSin(t *testing.T) {
	ref := ReferenceSin(0.785)
	require.Equal(t, uint(DefaultPrecision), ref.Prec())
	y, _ := ref.Float64()
	require.InDelta(t, math.Sin(0.785), y, 2e-16)
}

func TestEncloses(t *testing.T) {
	v := NewFloat(0.5, 64)
	require.True(t, Encloses(0, 1, v))
	require.True(t, Encloses(0.5, 0.5, v))
	require.False(t, Encloses(0.6, 1, v))
	require.False(t, Encloses(0, 0.4, v))
}

func TestNewFloat(t *testing.T) {
	require.Equal(t, 0, NewFloat(3, 64).Cmp(NewFloat(3.0, 64)))
	require.Equal(t, 0, NewFloat(int64(3), 64).Cmp(NewFloat(float32(3), 64)))
	require.Panics(t, func() { NewFloat("3", 64) })
}

package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, 2, Max(1, 2))
	require.Equal(t, -3.5, MinOf(1.0, -3.5, 2.0, 0.0))
	require.Equal(t, 2.0, MaxOf(1.0, -3.5, 2.0, 0.0))
	require.Equal(t, 4, MinOf(4))
	require.Equal(t, "b", Max("a", "b"))
}

func TestMinMaxUnordered(t *testing.T) {
	require.True(t, math.IsNaN(Min(1.0, math.NaN())))
	require.Equal(t, 1.0, Min(math.NaN(), 1.0))
	require.Equal(t, 1.0, Max(math.NaN(), 1.0))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 1.0, Clamp(1.7, -1, 1))
	require.Equal(t, -1.0, Clamp(-12.0, -1, 1))
	require.Equal(t, 0.25, Clamp(0.25, -1, 1))
}

func TestPointy(t *testing.T) {
	p := Pointy(500000)
	require.Equal(t, 500000, *p)
	*p = 3
	require.NotEqual(t, Pointy(500000), p)
}

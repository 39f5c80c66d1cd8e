package memo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_Deterministic(t *testing.T) {
	a := NewKey().Floats([]float64{1, 2, 3}).Float(10).String("trim").Sum()
	b := NewKey().Floats([]float64{1, 2, 3}).Float(10).String("trim").Sum()
	require.Equal(t, a, b)
}

func TestKey_Distinguishes(t *testing.T) {
	tests := []struct {
		name string
		a, b uint64
	}{
		{
			"different values",
			NewKey().Floats([]float64{1, 2}).Sum(),
			NewKey().Floats([]float64{1, 3}).Sum(),
		},
		{
			"split point",
			NewKey().Floats([]float64{1}).Floats([]float64{2, 3}).Sum(),
			NewKey().Floats([]float64{1, 2}).Floats([]float64{3}).Sum(),
		},
		{
			"signed zero",
			NewKey().Float(0).Sum(),
			NewKey().Float(math.Copysign(0, -1)).Sum(),
		},
		{
			"string split",
			NewKey().String("ab").String("c").Sum(),
			NewKey().String("a").String("bc").Sum(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, tt.a, tt.b)
		})
	}
}

func TestLast_Get(t *testing.T) {
	var cache Last[int]
	calls := 0
	compute := func() int {
		calls++
		return calls * 10
	}

	require.Equal(t, 10, cache.Get(1, compute))
	require.Equal(t, 10, cache.Get(1, compute))
	require.Equal(t, 1, calls)

	require.Equal(t, 20, cache.Get(2, compute))
	require.Equal(t, 30, cache.Get(1, compute))
	require.Equal(t, 3, calls)

	require.Equal(t, 1, cache.Hits())
	require.Equal(t, 3, cache.Misses())
}

func TestLast_Reset(t *testing.T) {
	var cache Last[string]
	cache.Get(7, func() string { return "first" })
	cache.Reset()

	got := cache.Get(7, func() string { return "second" })
	require.Equal(t, "second", got)
}

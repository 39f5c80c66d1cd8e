package robust

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []float64{5, 1, 9, 3, 7, 2, 8, 4, 6, 100}

func TestTrim(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		expected   []float64
	}{
		{"zero keeps everything sorted", 0, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}},
		{"ten percent", 10, []float64{2, 3, 4, 5, 6, 7, 8, 9}},
		{"fifteen percent floors", 15, []float64{2, 3, 4, 5, 6, 7, 8, 9}},
		{"forty percent", 40, []float64{5, 6}},
		{"fifty percent empties", 50, []float64{}},
		{"over hundred clamps", 250, []float64{}},
		{"negative clamps to zero", -20, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}},
		{"nan clamps to zero", math.NaN(), []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Trim(sample, tt.percentage))
		})
	}
}

func TestTrim_DoesNotMutateInput(t *testing.T) {
	in := []float64{3, 1, 2}
	Trim(in, 0)
	require.Equal(t, []float64{3, 1, 2}, in)
}

func TestWinsorize(t *testing.T) {
	got := Winsorize(sample, 10)
	require.Equal(t, []float64{5, 2, 9, 3, 7, 2, 8, 4, 6, 9}, got)

	require.Equal(t, sample, Winsorize(sample, 0))
	require.Empty(t, Winsorize(nil, 10))
}

func TestWinsorize_PreservesLength(t *testing.T) {
	for _, p := range []float64{0, 10, 33, 50, 80, 100, -5} {
		got := Winsorize(sample, p)
		require.Len(t, got, len(sample), "percentage %v", p)
	}
}

func TestWinsorize_BoundsNeverCross(t *testing.T) {
	odd := []float64{4, 1, 3, 2, 5}
	require.Equal(t, []float64{3, 3, 3, 3, 3}, Winsorize(odd, 100))

	even := []float64{4, 1, 3, 2}
	require.Equal(t, []float64{3, 2, 3, 2}, Winsorize(even, 100))
}

func TestWinsorize_Idempotent(t *testing.T) {
	for _, p := range []float64{0, 10, 20, 45, 100} {
		once := Winsorize(sample, p)
		twice := Winsorize(once, p)
		require.Equal(t, once, twice, "percentage %v", p)
	}
}

func TestWinsorize_ZeroPercentSameMultiset(t *testing.T) {
	got := Winsorize(sample, 0)
	a, b := slices.Clone(got), slices.Clone(sample)
	slices.Sort(a)
	slices.Sort(b)
	require.Equal(t, b, a)
}

func TestQuartiles(t *testing.T) {
	q1, q3 := Quartiles(sample)
	// sorted: 1 2 3 4 5 6 7 8 9 100, positions 2 and 7
	assert.Equal(t, 3.0, q1)
	assert.Equal(t, 8.0, q3)

	q1, q3 = Quartiles(nil)
	assert.Zero(t, q1)
	assert.Zero(t, q3)
}

func TestIQROutliers(t *testing.T) {
	flags := IQROutliers(sample, 1.5)
	require.Len(t, flags, len(sample))

	// fences: 3 - 7.5 = -4.5 and 8 + 7.5 = 15.5
	expected := make([]bool, len(sample))
	expected[9] = true
	require.Equal(t, expected, flags)
}

func TestIQROutliers_NonPositiveMultiplier(t *testing.T) {
	// A multiplier clamped to 0 puts the fences at the quartiles themselves.
	flags := IQROutliers(sample, -2)
	var outliers []float64
	for i, f := range flags {
		if f {
			outliers = append(outliers, sample[i])
		}
	}
	require.ElementsMatch(t, []float64{1, 2, 9, 100}, outliers)
	require.Equal(t, flags, IQROutliers(sample, 0))
}

func TestIQROutliers_SmallSamples(t *testing.T) {
	require.Empty(t, IQROutliers(nil, 1.5))
	require.Equal(t, []bool{false}, IQROutliers([]float64{42}, 1.5))
}

func TestMeanMedian(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.InDelta(t, 14.5, Mean(sample), 1e-12)
	assert.Equal(t, 5.5, Median(sample))
}

func TestConvenienceWrappers(t *testing.T) {
	assert.InDelta(t, 5.5, TrimmedMean(sample, 10), 1e-12)
	assert.InDelta(t, 5.5, WinsorizedMean(sample, 10), 1e-12)
	assert.Equal(t, 0.0, TrimmedMean(sample, 50))
	assert.Equal(t, 1, OutlierCount(sample, 1.5))
}

func TestSummarize(t *testing.T) {
	s := Summarize(sample, -1, math.NaN())
	require.Equal(t, 10, s.N)
	require.Equal(t, 0.0, s.Percentage)
	require.Equal(t, 0.0, s.Multiplier)
	require.InDelta(t, 14.5, s.TrimmedMean, 1e-12)
	require.Equal(t, 4, s.OutlierCount)

	s = Summarize(sample, 10, 1.5)
	require.Equal(t, 3.0, s.Q1)
	require.Equal(t, 8.0, s.Q3)
	require.Equal(t, 5.5, s.Median)
	require.Equal(t, 1, s.OutlierCount)
	require.True(t, s.Outliers[9])
}

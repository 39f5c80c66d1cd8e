package robust

import (
	"math"
	"slices"
)

// clampPercent keeps a trim percentage inside [0, 100]. NaN becomes 0.
func clampPercent(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// clampMultiplier keeps an IQR fence multiplier non-negative. NaN becomes 0.
func clampMultiplier(m float64) float64 {
	if math.IsNaN(m) || m < 0 {
		return 0
	}
	return m
}

func trimCount(n int, percentage float64) int {
	return int(math.Floor(float64(n) * clampPercent(percentage) / 100))
}

func sortedCopy(sample []float64) []float64 {
	s := slices.Clone(sample)
	slices.Sort(s)
	return s
}

// Trim sorts the sample and drops floor(n*percentage/100) values from each end.
// The result is empty when nothing is left.
func Trim(sample []float64, percentage float64) []float64 {
	s := sortedCopy(sample)
	k := trimCount(len(s), percentage)
	if 2*k >= len(s) {
		return []float64{}
	}
	return s[k : len(s)-k]
}

// Winsorize clamps values below the k-th and above the (n-1-k)-th sorted
// value to those bounds, where k = floor(n*percentage/100). k is capped at
// (n-1)/2 so the bounds never cross. Input order and length are kept.
func Winsorize(sample []float64, percentage float64) []float64 {
	out := make([]float64, len(sample))
	if len(sample) == 0 {
		return out
	}

	s := sortedCopy(sample)
	n := len(s)
	k := min(trimCount(n, percentage), (n-1)/2)
	lower, upper := s[k], s[n-1-k]

	for i, v := range sample {
		switch {
		case v < lower:
			out[i] = lower
		case v > upper:
			out[i] = upper
		default:
			out[i] = v
		}
	}
	return out
}

// Quartiles returns the values at sorted positions floor(n/4) and floor(3n/4).
// This is a simplified rule, not an interpolating quartile definition.
func Quartiles(sample []float64) (q1, q3 float64) {
	if len(sample) == 0 {
		return 0, 0
	}
	s := sortedCopy(sample)
	n := len(s)
	return s[n/4], s[3*n/4]
}

// IQROutliers flags values outside [q1 - m*iqr, q3 + m*iqr]. The result runs
// parallel to the input.
func IQROutliers(sample []float64, multiplier float64) []bool {
	flags := make([]bool, len(sample))
	if len(sample) == 0 {
		return flags
	}

	m := clampMultiplier(multiplier)
	q1, q3 := Quartiles(sample)
	iqr := q3 - q1
	lo, hi := q1-m*iqr, q3+m*iqr

	for i, v := range sample {
		flags[i] = v < lo || v > hi
	}
	return flags
}

// Mean returns the arithmetic mean, or 0 for an empty sample.
func Mean(sample []float64) float64 {
	if len(sample) == 0 {
		return 0
	}
	var sum float64
	for _, v := range sample {
		sum += v
	}
	return sum / float64(len(sample))
}

// Median returns the middle value, averaging the central pair for even lengths.
// An empty sample returns 0.
func Median(sample []float64) float64 {
	n := len(sample)
	if n == 0 {
		return 0
	}
	s := sortedCopy(sample)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// TrimmedMean is Mean(Trim(sample, percentage)).
func TrimmedMean(sample []float64, percentage float64) float64 {
	return Mean(Trim(sample, percentage))
}

// WinsorizedMean is Mean(Winsorize(sample, percentage)).
func WinsorizedMean(sample []float64, percentage float64) float64 {
	return Mean(Winsorize(sample, percentage))
}

// OutlierCount counts the values flagged by IQROutliers.
func OutlierCount(sample []float64, multiplier float64) int {
	count := 0
	for _, out := range IQROutliers(sample, multiplier) {
		if out {
			count++
		}
	}
	return count
}

package generator

import (
	"math"

	"github.com/haskel/statkit/internal/stats/association"
	"github.com/haskel/statkit/internal/stats/survival"
)

// StandardNormal draws one N(0, 1) variate with the Box-Muller transform.
func StandardNormal(src NoiseSource) float64 {
	// 1-u keeps the log argument in (0, 1].
	u1 := 1 - src.NextUniform()
	u2 := src.NextUniform()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// Normal draws n variates from N(mean, std^2). Negative std is treated as 0.
func Normal(src NoiseSource, mean, std float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	std = math.Max(std, 0)
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + std*StandardNormal(src)
	}
	return out
}

// AR simulates x_t = sum_i phi[i] * x_{t-1-i} + e_t with e_t ~ N(0, std^2).
// Values before the start of the series are 0.
func AR(src NoiseSource, phi []float64, std float64, n int) []float64 {
	return ARMA(src, phi, nil, std, n)
}

// MA simulates x_t = e_t + sum_i theta[i] * e_{t-1-i}.
func MA(src NoiseSource, theta []float64, std float64, n int) []float64 {
	return ARMA(src, nil, theta, std, n)
}

// ARMA combines the autoregressive and moving-average recurrences.
func ARMA(src NoiseSource, phi, theta []float64, std float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	noise := Normal(src, 0, std, n)
	x := make([]float64, n)
	for t := range x {
		v := noise[t]
		for i, p := range phi {
			if lag := t - 1 - i; lag >= 0 {
				v += p * x[lag]
			}
		}
		for i, q := range theta {
			if lag := t - 1 - i; lag >= 0 {
				v += q * noise[lag]
			}
		}
		x[t] = v
	}
	return x
}

// Scatter draws n points with x uniform in [0, 10) and y = slope*x + intercept + noise.
func Scatter(src NoiseSource, n int, slope, intercept, noise float64) []association.Pair {
	if n <= 0 {
		return []association.Pair{}
	}
	noise = math.Max(noise, 0)
	out := make([]association.Pair, n)
	for i := range out {
		x := 10 * src.NextUniform()
		out[i] = association.Pair{X: x, Y: slope*x + intercept + noise*StandardNormal(src)}
	}
	return out
}

// WithOutliers returns a copy of sample where roughly fraction of the values
// are pushed scale standard units away from the mean, in a random direction.
func WithOutliers(src NoiseSource, sample []float64, fraction, scale float64) []float64 {
	out := make([]float64, len(sample))
	copy(out, sample)
	if len(out) == 0 || fraction <= 0 {
		return out
	}

	mean, std := meanStd(out)
	if std == 0 {
		std = 1
	}
	for i := range out {
		if src.NextUniform() >= fraction {
			continue
		}
		sign := 1.0
		if src.NextUniform() < 0.5 {
			sign = -1
		}
		out[i] = mean + sign*scale*std*(1+src.NextUniform())
	}
	return out
}

// Survival draws n subjects with exponential event times (rate) and
// exponential censoring times (censorRate). A non-positive censorRate
// disables censoring.
func Survival(src NoiseSource, n int, rate, censorRate float64) []survival.Observation {
	if n <= 0 {
		return []survival.Observation{}
	}
	if rate <= 0 {
		rate = 1
	}
	out := make([]survival.Observation, n)
	for i := range out {
		eventTime := exponential(src, rate)
		if censorRate > 0 {
			if c := exponential(src, censorRate); c < eventTime {
				out[i] = survival.Observation{Time: c, Event: 0}
				continue
			}
		}
		out[i] = survival.Observation{Time: eventTime, Event: 1}
	}
	return out
}

// Words picks n tokens uniformly from vocab.
func Words(src NoiseSource, vocab []string, n int) []string {
	if n <= 0 || len(vocab) == 0 {
		return []string{}
	}
	out := make([]string, n)
	for i := range out {
		idx := int(src.NextUniform() * float64(len(vocab)))
		out[i] = vocab[min(idx, len(vocab)-1)]
	}
	return out
}

func exponential(src NoiseSource, rate float64) float64 {
	return -math.Log(1-src.NextUniform()) / rate
}

func meanStd(xs []float64) (float64, float64) {
	var sum float64
	for _, v := range xs {
		sum += v
	}
	mean := sum / float64(len(xs))
	var ss float64
	for _, v := range xs {
		ss += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(ss / float64(len(xs)))
}

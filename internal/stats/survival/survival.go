package survival

import (
	"fmt"
	"math"
	"slices"

	"github.com/haskel/statkit/internal/stats"
)

// Observation is a single subject. Event is 1 when the event happened at Time
// and 0 when the subject was censored at Time.
type Observation struct {
	Time  float64 `json:"time"`
	Event int     `json:"event"`
}

// Point is one breakpoint of the survival step function.
type Point struct {
	Time     float64 `json:"time"`
	Survival float64 `json:"survival"`
}

// Curve is a right-continuous step function starting at (0, 1).
type Curve []Point

// Estimate computes the Kaplan-Meier product-limit estimate for the sample.
// Ties at the same event time are handled as a single drop.
func Estimate(sample []Observation) (Curve, error) {
	for i, o := range sample {
		if math.IsNaN(o.Time) || math.IsInf(o.Time, 0) || o.Time < 0 {
			return nil, fmt.Errorf("observation %d: time must be finite and non-negative, got %v: %w", i, o.Time, stats.ErrInvalidArgument)
		}
		if o.Event != 0 && o.Event != 1 {
			return nil, fmt.Errorf("observation %d: event must be 0 or 1, got %d: %w", i, o.Event, stats.ErrInvalidArgument)
		}
	}

	curve := Curve{{Time: 0, Survival: 1.0}}
	if len(sample) == 0 {
		return curve, nil
	}

	sorted := slices.Clone(sample)
	slices.SortFunc(sorted, func(a, b Observation) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})

	s := 1.0
	n := len(sorted)
	for i := 0; i < n; {
		t := sorted[i].Time
		events := 0
		j := i
		for j < n && sorted[j].Time == t {
			events += sorted[j].Event
			j++
		}

		// Everything from i onward has time >= t.
		atRisk := n - i
		if events > 0 {
			if atRisk > 0 {
				s *= 1 - float64(events)/float64(atRisk)
			}
			curve = append(curve, Point{Time: t, Survival: s})
		}
		i = j
	}

	maxTime := sorted[n-1].Time
	if last := curve[len(curve)-1]; maxTime > last.Time {
		curve = append(curve, Point{Time: maxTime, Survival: last.Survival})
	}

	return curve, nil
}

// At evaluates the step function at t. Times before the origin return 1.
func (c Curve) At(t float64) float64 {
	s := 1.0
	for _, p := range c {
		if p.Time > t {
			break
		}
		s = p.Survival
	}
	return s
}

// MedianTime returns the earliest time at which survival drops to 0.5 or below.
// The second result is false when the curve never gets there.
func (c Curve) MedianTime() (float64, bool) {
	for _, p := range c {
		if p.Survival <= 0.5 {
			return p.Time, true
		}
	}
	return 0, false
}

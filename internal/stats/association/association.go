package association

import (
	"fmt"
	"math"

	"github.com/haskel/statkit/internal/stats"
)

// Pair is one (x, y) observation.
type Pair struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GroupScore is one observation for point-biserial correlation.
type GroupScore struct {
	Group int     `json:"group"`
	Score float64 `json:"score"`
}

// Table is a 2x2 contingency table [[a, b], [c, d]].
type Table [2][2]int

// Tau is the result of KendallTau.
type Tau struct {
	Tau        float64 `json:"tau"`
	Concordant int     `json:"concordant"`
	Discordant int     `json:"discordant"`

	// Informational tie counts. A pair tied on both variables counts in both.
	TiesX int `json:"ties_x"`
	TiesY int `json:"ties_y"`
}

// Zip pairs up two equal-length slices.
func Zip(x, y []float64) ([]Pair, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("mismatched sample lengths %d and %d: %w", len(x), len(y), stats.ErrInvalidArgument)
	}
	pairs := make([]Pair, len(x))
	for i := range x {
		pairs[i] = Pair{X: x[i], Y: y[i]}
	}
	return pairs, nil
}

// KendallTau computes tau-a by full pairwise enumeration.
// Fewer than two pairs yield a zero tau.
func KendallTau(pairs []Pair) Tau {
	var res Tau
	n := len(pairs)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := pairs[i].X - pairs[j].X
			dy := pairs[i].Y - pairs[j].Y
			if dx == 0 {
				res.TiesX++
			}
			if dy == 0 {
				res.TiesY++
			}
			if dx == 0 || dy == 0 {
				continue
			}
			if (dx > 0) == (dy > 0) {
				res.Concordant++
			} else {
				res.Discordant++
			}
		}
	}

	total := float64(n) * float64(n-1) / 2
	if total > 0 {
		res.Tau = float64(res.Concordant-res.Discordant) / total
	}
	return res
}

// Phi computes the phi coefficient of a 2x2 table. A table with an empty row
// or column returns 0. Negative counts are an error.
func Phi(t Table) (float64, error) {
	for i := range t {
		for j := range t[i] {
			if t[i][j] < 0 {
				return 0, fmt.Errorf("cell [%d][%d] is negative (%d): %w", i, j, t[i][j], stats.ErrInvalidArgument)
			}
		}
	}

	a, b := float64(t[0][0]), float64(t[0][1])
	c, d := float64(t[1][0]), float64(t[1][1])

	den := math.Sqrt((a + b) * (c + d) * (a + c) * (b + d))
	if den == 0 {
		return 0, nil
	}
	return (a*d - b*c) / den, nil
}

// PointBiserial correlates a binary group label with a continuous score using
// the population standard deviation of the pooled scores. An empty group or a
// constant score returns 0. Labels other than 0 and 1 are an error.
func PointBiserial(obs []GroupScore) (float64, error) {
	var (
		sum   [2]float64
		count [2]int
		total float64
	)
	for i, o := range obs {
		if o.Group != 0 && o.Group != 1 {
			return 0, fmt.Errorf("observation %d: group must be 0 or 1, got %d: %w", i, o.Group, stats.ErrInvalidArgument)
		}
		sum[o.Group] += o.Score
		count[o.Group]++
		total += o.Score
	}

	if count[0] == 0 || count[1] == 0 {
		return 0, nil
	}

	n := float64(len(obs))
	mean := total / n
	var ss float64
	for _, o := range obs {
		d := o.Score - mean
		ss += d * d
	}
	stdDev := math.Sqrt(ss / n)
	if stdDev == 0 {
		return 0, nil
	}

	mean0 := sum[0] / float64(count[0])
	mean1 := sum[1] / float64(count[1])
	p0 := float64(count[0]) / n
	p1 := float64(count[1]) / n

	return (mean1 - mean0) / stdDev * math.Sqrt(p0*p1), nil
}

package tui

import (
	"math"

	"github.com/haskel/statkit/internal/memo"
	"github.com/haskel/statkit/internal/stats/robust"
)

const (
	maxTrimPercent = 50
	maxMultiplier  = 10
)

// Config holds explorer configuration
type Config struct {
	// Sample is the starting sample. When empty, Generate is called once.
	Sample []float64
	// Generate produces a fresh sample on demand. May be nil.
	Generate func() []float64

	TrimPercent    float64
	Multiplier     float64
	StepPercent    float64
	StepMultiplier float64
}

// Model represents the explorer state
type Model struct {
	config Config

	sample     []float64
	trim       float64
	multiplier float64

	// Recomputed only when the sample or a parameter changes
	cache *memo.Last[robust.Summary]

	// UI state
	width  int
	height int
}

// NewModel creates a new explorer model
func NewModel(cfg Config) Model {
	if cfg.StepPercent <= 0 {
		cfg.StepPercent = 5
	}
	if cfg.StepMultiplier <= 0 {
		cfg.StepMultiplier = 0.25
	}

	sample := cfg.Sample
	if len(sample) == 0 && cfg.Generate != nil {
		sample = cfg.Generate()
	}

	return Model{
		config:     cfg,
		sample:     sample,
		trim:       clamp(cfg.TrimPercent, 0, maxTrimPercent),
		multiplier: clamp(cfg.Multiplier, 0, maxMultiplier),
		cache:      &memo.Last[robust.Summary]{},
	}
}

// Summary returns the current estimates, served from cache when nothing changed.
func (m Model) Summary() robust.Summary {
	key := memo.NewKey().Floats(m.sample).Float(m.trim).Float(m.multiplier).Sum()
	return m.cache.Get(key, func() robust.Summary {
		return robust.Summarize(m.sample, m.trim, m.multiplier)
	})
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

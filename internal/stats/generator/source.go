package generator

import "math/rand/v2"

// NoiseSource supplies uniform variates in [0, 1).
type NoiseSource interface {
	NextUniform() float64
}

type randSource struct {
	r *rand.Rand
}

func (s *randSource) NextUniform() float64 {
	return s.r.Float64()
}

// NewSeededSource returns a reproducible source.
func NewSeededSource(seed uint64) NoiseSource {
	return &randSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSource returns a source seeded from the runtime.
func NewRandomSource() NoiseSource {
	return &randSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

package bayes

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/haskel/statkit/internal/stats"
)

// Class is one side of the binary classifier.
type Class int

const (
	// ClassA is the first training corpus (spam in the widget).
	ClassA Class = iota
	// ClassB is the second training corpus (ham in the widget).
	ClassB
)

// String returns string representation of the class.
func (c Class) String() string {
	switch c {
	case ClassA:
		return "a"
	case ClassB:
		return "b"
	default:
		return "unknown"
	}
}

// ParseClass converts "a" or "b" into a Class.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(s) {
	case "a":
		return ClassA, nil
	case "b":
		return ClassB, nil
	}
	return 0, fmt.Errorf("unknown class %q: %w", s, stats.ErrInvalidArgument)
}

const (
	// DefaultSmoothing is the add-one Laplace pseudo-count.
	DefaultSmoothing = 1.0

	prior = 0.5
)

// Config holds classifier parameters.
type Config struct {
	// Smoothing is the Laplace pseudo-count k. Non-positive values fall back to DefaultSmoothing.
	Smoothing float64
	// TieClass wins when both log-scores are exactly equal.
	TieClass Class
}

// DefaultConfig returns add-one smoothing with ClassB winning ties.
func DefaultConfig() Config {
	return Config{
		Smoothing: DefaultSmoothing,
		TieClass:  ClassB,
	}
}

// Model is a trained bag-of-words classifier. It is immutable after Train.
type Model struct {
	smoothing float64
	tieClass  Class

	counts [2]map[string]int
	totals [2]int
	vocab  map[string]struct{}
}

// Result is the outcome of Classify. Log-scores are natural logs.
type Result struct {
	Class     Class      `json:"class"`
	LogScores [2]float64 `json:"log_scores"`
}

// LogScore returns the log-score of the given class.
func (r Result) LogScore(c Class) float64 {
	return r.LogScores[c]
}

// Tokenize splits on whitespace and case-folds.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}

// Train builds a model with DefaultConfig.
func Train(classA, classB []string) (*Model, error) {
	return TrainWithConfig(DefaultConfig(), classA, classB)
}

// TrainText tokenizes both corpora and trains with DefaultConfig.
func TrainText(classA, classB string) (*Model, error) {
	return Train(Tokenize(classA), Tokenize(classB))
}

// TrainWithConfig builds a model from the two token corpora.
// Both corpora empty is an error: there is no vocabulary to smooth over.
func TrainWithConfig(cfg Config, classA, classB []string) (*Model, error) {
	k := cfg.Smoothing
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		k = DefaultSmoothing
	}
	if cfg.TieClass != ClassA && cfg.TieClass != ClassB {
		cfg.TieClass = ClassB
	}

	m := &Model{
		smoothing: k,
		tieClass:  cfg.TieClass,
		counts:    [2]map[string]int{make(map[string]int), make(map[string]int)},
		vocab:     make(map[string]struct{}),
	}

	for c, corpus := range [2][]string{classA, classB} {
		for _, tok := range corpus {
			tok = strings.ToLower(tok)
			m.counts[c][tok]++
			m.totals[c]++
			m.vocab[tok] = struct{}{}
		}
	}

	if len(m.vocab) == 0 {
		return nil, fmt.Errorf("both training corpora are empty: %w", stats.ErrInvalidArgument)
	}

	return m, nil
}

// Probability returns the smoothed P(token|class).
func (m *Model) Probability(token string, c Class) float64 {
	token = strings.ToLower(token)
	num := float64(m.counts[c][token]) + m.smoothing
	den := float64(m.totals[c]) + m.smoothing*float64(len(m.vocab))
	return num / den
}

// Vocabulary returns the sorted union of training tokens.
func (m *Model) Vocabulary() []string {
	words := make([]string, 0, len(m.vocab))
	for w := range m.vocab {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// Classify scores every input token, including ones never seen in training.
func (m *Model) Classify(tokens []string) Result {
	var r Result
	for c := ClassA; c <= ClassB; c++ {
		score := math.Log(prior)
		for _, tok := range tokens {
			score += math.Log(m.Probability(tok, c))
		}
		r.LogScores[c] = score
	}

	switch {
	case r.LogScores[ClassA] > r.LogScores[ClassB]:
		r.Class = ClassA
	case r.LogScores[ClassB] > r.LogScores[ClassA]:
		r.Class = ClassB
	default:
		r.Class = m.tieClass
	}

	return r
}

// ClassifyText tokenizes text and classifies it.
func (m *Model) ClassifyText(text string) Result {
	return m.Classify(Tokenize(text))
}

package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/haskel/statkit/internal/stats/association"
	"github.com/haskel/statkit/internal/stats/survival"
)

// Format is an on-disk encoding for sample files.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Corpus holds the two training texts of the text classifier.
type Corpus struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// FormatOf picks the format from the file extension. Anything that is not
// YAML is read as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Decode reads one document from r into v.
func Decode(r io.Reader, format Format, v any) error {
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("failed to parse json: %w", err)
		}
	}
	return nil
}

// Read decodes the file at path into v. A path of "-" reads JSON from stdin.
func Read(path string, v any) error {
	if path == "-" {
		return Decode(os.Stdin, FormatJSON, v)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	if err := Decode(f, FormatOf(path), v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadObservations reads a list of {time, event} records.
func ReadObservations(path string) ([]survival.Observation, error) {
	var obs []survival.Observation
	if err := Read(path, &obs); err != nil {
		return nil, err
	}
	return obs, nil
}

// ReadPairs reads a list of {x, y} records.
func ReadPairs(path string) ([]association.Pair, error) {
	var pairs []association.Pair
	if err := Read(path, &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// ReadGroups reads a list of {group, score} records.
func ReadGroups(path string) ([]association.GroupScore, error) {
	var obs []association.GroupScore
	if err := Read(path, &obs); err != nil {
		return nil, err
	}
	return obs, nil
}

// ReadTable reads a [[a, b], [c, d]] contingency table.
func ReadTable(path string) (association.Table, error) {
	var t association.Table
	if err := Read(path, &t); err != nil {
		return t, err
	}
	return t, nil
}

// ReadSample reads a flat list of numbers.
func ReadSample(path string) ([]float64, error) {
	var sample []float64
	if err := Read(path, &sample); err != nil {
		return nil, err
	}
	return sample, nil
}

// ReadCorpus reads the {a, b} training texts.
func ReadCorpus(path string) (Corpus, error) {
	var c Corpus
	if err := Read(path, &c); err != nil {
		return c, err
	}
	return c, nil
}

// Write encodes v as indented JSON.
func Write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

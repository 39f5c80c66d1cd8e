package config

import (
	"errors"
	"fmt"
)

const maxLagCoefficients = 8

func (c *Config) Validate() error {
	var errs []error

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Robust.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("robust: %w", err))
	}

	if err := c.Classifier.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("classifier: %w", err))
	}

	if err := c.Generator.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("generator: %w", err))
	}

	if err := c.Explorer.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("explorer: %w", err))
	}

	return errors.Join(errs...)
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s (valid: json, text)", l.Format)
	}

	return nil
}

func (r *RobustConfig) Validate() error {
	var errs []error

	if r.TrimPercent < 0 || r.TrimPercent > 50 {
		errs = append(errs, fmt.Errorf("trim_percent must be between 0 and 50, got %v", r.TrimPercent))
	}

	if r.IQRMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("iqr_multiplier must be positive, got %v", r.IQRMultiplier))
	}

	return errors.Join(errs...)
}

func (c *ClassifierConfig) Validate() error {
	var errs []error

	if c.Smoothing <= 0 {
		errs = append(errs, fmt.Errorf("smoothing must be positive, got %v", c.Smoothing))
	}

	if c.TieClass != "a" && c.TieClass != "b" {
		errs = append(errs, fmt.Errorf("invalid tie_class: %s (valid: a, b)", c.TieClass))
	}

	if c.LabelA == "" || c.LabelB == "" {
		errs = append(errs, fmt.Errorf("label_a and label_b cannot be empty"))
	} else if c.LabelA == c.LabelB {
		errs = append(errs, fmt.Errorf("label_a and label_b must differ, both are %q", c.LabelA))
	}

	return errors.Join(errs...)
}

func (g *GeneratorConfig) Validate() error {
	var errs []error

	if g.Size < 1 {
		errs = append(errs, fmt.Errorf("size must be at least 1, got %d", g.Size))
	}

	if g.NoiseStd < 0 {
		errs = append(errs, fmt.Errorf("noise_std must be non-negative"))
	}

	if g.OutlierFraction < 0 || g.OutlierFraction > 1 {
		errs = append(errs, fmt.Errorf("outlier_fraction must be between 0 and 1"))
	}

	if g.OutlierScale < 0 {
		errs = append(errs, fmt.Errorf("outlier_scale must be non-negative"))
	}

	if len(g.AR) > maxLagCoefficients {
		errs = append(errs, fmt.Errorf("ar accepts at most %d coefficients, got %d", maxLagCoefficients, len(g.AR)))
	}

	if len(g.MA) > maxLagCoefficients {
		errs = append(errs, fmt.Errorf("ma accepts at most %d coefficients, got %d", maxLagCoefficients, len(g.MA)))
	}

	if g.EventRate <= 0 {
		errs = append(errs, fmt.Errorf("event_rate must be positive"))
	}

	if g.CensorRate < 0 {
		errs = append(errs, fmt.Errorf("censor_rate must be non-negative"))
	}

	return errors.Join(errs...)
}

func (e *ExplorerConfig) Validate() error {
	if e.StepPercent <= 0 {
		return fmt.Errorf("step_percent must be positive")
	}
	if e.StepMultiplier <= 0 {
		return fmt.Errorf("step_multiplier must be positive")
	}
	return nil
}

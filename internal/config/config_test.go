package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Robust.TrimPercent != 10 {
		t.Errorf("expected default trim percent 10, got %f", cfg.Robust.TrimPercent)
	}

	if cfg.Robust.IQRMultiplier != 1.5 {
		t.Errorf("expected default IQR multiplier 1.5, got %f", cfg.Robust.IQRMultiplier)
	}

	if cfg.Classifier.TieClass != "b" {
		t.Errorf("expected default tie class b, got %s", cfg.Classifier.TieClass)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	content := `
robust:
  trim_percent: 20

classifier:
  label_a: "junk"
  label_b: "inbox"

generator:
  seed: 42
  ar: [0.5, -0.2]

logging:
  level: "debug"
  format: "json"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Robust.TrimPercent != 20 {
		t.Errorf("expected trim percent 20, got %f", cfg.Robust.TrimPercent)
	}

	if cfg.Classifier.LabelA != "junk" || cfg.Classifier.LabelB != "inbox" {
		t.Errorf("expected labels junk/inbox, got %s/%s", cfg.Classifier.LabelA, cfg.Classifier.LabelB)
	}

	if cfg.Generator.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Generator.Seed)
	}

	if len(cfg.Generator.AR) != 2 || cfg.Generator.AR[1] != -0.2 {
		t.Errorf("expected ar [0.5 -0.2], got %v", cfg.Generator.AR)
	}

	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format json, got %s", cfg.Logging.Format)
	}

	// Check that defaults are preserved for unspecified values
	if cfg.Robust.IQRMultiplier != 1.5 {
		t.Errorf("expected default IQR multiplier 1.5, got %f", cfg.Robust.IQRMultiplier)
	}
	if cfg.Generator.Size != 200 {
		t.Errorf("expected default size 200, got %d", cfg.Generator.Size)
	}
}

func TestLoadInvalid(t *testing.T) {
	_, err := Parse([]byte("robust:\n  trim_percent: 75\n"))
	if err == nil {
		t.Error("expected validation error for trim_percent 75")
	}

	_, err = Parse([]byte("robust: [unclosed"))
	if err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	// Empty path returns defaults
	cfg := LoadOrDefault("")
	if cfg.Robust.TrimPercent != 10 {
		t.Errorf("expected default trim percent 10, got %f", cfg.Robust.TrimPercent)
	}

	// Non-existent file returns defaults
	cfg = LoadOrDefault("/nonexistent/path/config.yaml")
	if cfg.Explorer.StepPercent != 5 {
		t.Errorf("expected default step percent 5, got %f", cfg.Explorer.StepPercent)
	}
}

package config

type Config struct {
	Logging    LoggingConfig    `yaml:"logging" json:"logging"`
	Robust     RobustConfig     `yaml:"robust" json:"robust"`
	Classifier ClassifierConfig `yaml:"classifier" json:"classifier"`
	Generator  GeneratorConfig  `yaml:"generator" json:"generator"`
	Explorer   ExplorerConfig   `yaml:"explorer" json:"explorer"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// RobustConfig holds the starting parameters of the robust-location widget.
type RobustConfig struct {
	// TrimPercent is the share cut from each tail (0-50).
	TrimPercent float64 `yaml:"trim_percent" json:"trim_percent"`
	// IQRMultiplier scales the interquartile fences (1.5 is Tukey's choice).
	IQRMultiplier float64 `yaml:"iqr_multiplier" json:"iqr_multiplier"`
}

// ClassifierConfig holds text classifier settings.
type ClassifierConfig struct {
	Smoothing float64 `yaml:"smoothing" json:"smoothing"`
	// TieClass is "a" or "b": the class predicted when both scores are equal.
	TieClass string `yaml:"tie_class" json:"tie_class"`
	LabelA   string `yaml:"label_a" json:"label_a"`
	LabelB   string `yaml:"label_b" json:"label_b"`
}

// GeneratorConfig holds defaults for the synthetic data generators.
type GeneratorConfig struct {
	// Seed 0 means a random seed per run.
	Seed            uint64    `yaml:"seed" json:"seed"`
	Size            int       `yaml:"size" json:"size"`
	Mean            float64   `yaml:"mean" json:"mean"`
	NoiseStd        float64   `yaml:"noise_std" json:"noise_std"`
	OutlierFraction float64   `yaml:"outlier_fraction" json:"outlier_fraction"`
	OutlierScale    float64   `yaml:"outlier_scale" json:"outlier_scale"`
	AR              []float64 `yaml:"ar" json:"ar"`
	MA              []float64 `yaml:"ma" json:"ma"`
	Slope           float64   `yaml:"slope" json:"slope"`
	Intercept       float64   `yaml:"intercept" json:"intercept"`
	EventRate       float64   `yaml:"event_rate" json:"event_rate"`
	CensorRate      float64   `yaml:"censor_rate" json:"censor_rate"`
}

// ExplorerConfig holds key-press increments for the interactive explorer.
type ExplorerConfig struct {
	StepPercent    float64 `yaml:"step_percent" json:"step_percent"`
	StepMultiplier float64 `yaml:"step_multiplier" json:"step_multiplier"`
}

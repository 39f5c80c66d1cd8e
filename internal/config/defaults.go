package config

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Robust: RobustConfig{
			TrimPercent:   10,
			IQRMultiplier: 1.5,
		},
		Classifier: ClassifierConfig{
			Smoothing: 1,
			TieClass:  "b",
			LabelA:    "spam",
			LabelB:    "ham",
		},
		Generator: GeneratorConfig{
			Seed:            0,
			Size:            200,
			Mean:            0,
			NoiseStd:        1,
			OutlierFraction: 0.05,
			OutlierScale:    4,
			AR:              []float64{0.6},
			MA:              []float64{0.4},
			Slope:           1,
			Intercept:       0,
			EventRate:       0.1,
			CensorRate:      0.05,
		},
		Explorer: ExplorerConfig{
			StepPercent:    5,
			StepMultiplier: 0.25,
		},
	}
}

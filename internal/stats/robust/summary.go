package robust

// Summary bundles every location estimate the robust-location widget shows.
type Summary struct {
	N              int     `json:"n"`
	Percentage     float64 `json:"trim_percent"`
	Multiplier     float64 `json:"iqr_multiplier"`
	Mean           float64 `json:"mean"`
	Median         float64 `json:"median"`
	TrimmedMean    float64 `json:"trimmed_mean"`
	WinsorizedMean float64 `json:"winsorized_mean"`
	Q1             float64 `json:"q1"`
	Q3             float64 `json:"q3"`
	Outliers       []bool  `json:"outliers"`
	OutlierCount   int     `json:"outlier_count"`
}

// Summarize computes a Summary. Parameters are reported after clamping.
func Summarize(sample []float64, percentage, multiplier float64) Summary {
	q1, q3 := Quartiles(sample)
	flags := IQROutliers(sample, multiplier)

	count := 0
	for _, f := range flags {
		if f {
			count++
		}
	}

	return Summary{
		N:              len(sample),
		Percentage:     clampPercent(percentage),
		Multiplier:     clampMultiplier(multiplier),
		Mean:           Mean(sample),
		Median:         Median(sample),
		TrimmedMean:    TrimmedMean(sample, percentage),
		WinsorizedMean: WinsorizedMean(sample, percentage),
		Q1:             q1,
		Q3:             q3,
		Outliers:       flags,
		OutlierCount:   count,
	}
}

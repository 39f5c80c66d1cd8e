package cli

import (
	"github.com/spf13/cobra"

	"github.com/haskel/statkit/internal/cli/tui"
	"github.com/haskel/statkit/internal/dataset"
	"github.com/haskel/statkit/internal/stats/generator"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [file]",
	Short: "Launch the interactive robust-location explorer",
	Long: `Launch a terminal explorer that shows how trimming, Winsorizing and
IQR fences react to outliers. Without a file a synthetic sample with
outliers is generated from the generator config, and "g" draws a new one.

Examples:
  statkit explore
  statkit explore sample.json
  statkit explore --seed 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().Uint64Var(&genSeed, "seed", 0, "random seed (default from config)")
	rootCmd.AddCommand(exploreCmd)
}

func exploreConfig(cmd *cobra.Command, args []string) (tui.Config, error) {
	c := tui.Config{
		TrimPercent:    cfg.Robust.TrimPercent,
		Multiplier:     cfg.Robust.IQRMultiplier,
		StepPercent:    cfg.Explorer.StepPercent,
		StepMultiplier: cfg.Explorer.StepMultiplier,
	}

	if len(args) == 1 {
		sample, err := dataset.ReadSample(args[0])
		if err != nil {
			return c, err
		}
		c.Sample = sample
		return c, nil
	}

	g := cfg.Generator
	src := noiseSource(cmd)
	c.Generate = func() []float64 {
		base := generator.Normal(src, g.Mean, g.NoiseStd, g.Size)
		return generator.WithOutliers(src, base, g.OutlierFraction, g.OutlierScale)
	}
	return c, nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	c, err := exploreConfig(cmd, args)
	if err != nil {
		return err
	}
	log.Debug("starting explorer", "from_file", len(args) == 1)
	return tui.Run(c)
}

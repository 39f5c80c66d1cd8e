package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haskel/statkit/internal/dataset"
	"github.com/haskel/statkit/internal/stats/association"
)

var kendallCmd = &cobra.Command{
	Use:   "kendall <file>",
	Short: "Kendall's tau-a for a list of {x, y} pairs",
	Long: `Count concordant and discordant pairs over every pair of points and
report tau-a. Pairs tied on either variable count for neither side.

Examples:
  statkit kendall scatter.json
  statkit generate scatter -n 40 | statkit kendall -`,
	Args: cobra.ExactArgs(1),
	RunE: runKendall,
}

var phiCmd = &cobra.Command{
	Use:   "phi <file>",
	Short: "Phi coefficient of a 2x2 contingency table",
	Long: `Read a [[a, b], [c, d]] table of non-negative counts and print the phi
coefficient. A table with an empty row or column yields 0.`,
	Args: cobra.ExactArgs(1),
	RunE: runPhi,
}

var biserialCmd = &cobra.Command{
	Use:   "biserial <file>",
	Short: "Point-biserial correlation for {group, score} records",
	Long: `Correlate a binary group label (0 or 1) with a continuous score.
An empty group or a constant score yields 0.`,
	Args: cobra.ExactArgs(1),
	RunE: runBiserial,
}

func init() {
	rootCmd.AddCommand(kendallCmd)
	rootCmd.AddCommand(phiCmd)
	rootCmd.AddCommand(biserialCmd)
}

func runKendall(cmd *cobra.Command, args []string) error {
	pairs, err := dataset.ReadPairs(args[0])
	if err != nil {
		return err
	}
	log.Debug("computing kendall tau", "pairs", len(pairs))

	tau := association.KendallTau(pairs)

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, tau)
	}

	fmt.Fprintf(out, "Kendall tau-a: %.4f\n", tau.Tau)
	fmt.Fprintf(out, "  Concordant pairs: %d\n", tau.Concordant)
	fmt.Fprintf(out, "  Discordant pairs: %d\n", tau.Discordant)
	fmt.Fprintf(out, "  Ties in x: %d, ties in y: %d\n", tau.TiesX, tau.TiesY)
	return nil
}

func runPhi(cmd *cobra.Command, args []string) error {
	table, err := dataset.ReadTable(args[0])
	if err != nil {
		return err
	}

	phi, err := association.Phi(table)
	if err != nil {
		return fmt.Errorf("failed to compute phi: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, map[string]any{"table": table, "phi": phi})
	}

	fmt.Fprintf(out, "        %6s %6s\n", "y=1", "y=0")
	fmt.Fprintf(out, "  x=1   %6d %6d\n", table[0][0], table[0][1])
	fmt.Fprintf(out, "  x=0   %6d %6d\n", table[1][0], table[1][1])
	fmt.Fprintf(out, "\nPhi coefficient: %.4f\n", phi)
	return nil
}

func runBiserial(cmd *cobra.Command, args []string) error {
	obs, err := dataset.ReadGroups(args[0])
	if err != nil {
		return err
	}
	log.Debug("computing point-biserial correlation", "observations", len(obs))

	r, err := association.PointBiserial(obs)
	if err != nil {
		return fmt.Errorf("failed to compute point-biserial correlation: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, map[string]any{"n": len(obs), "r": r})
	}

	fmt.Fprintf(out, "Point-biserial r: %.4f (n=%d)\n", r, len(obs))
	return nil
}

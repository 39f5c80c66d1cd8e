package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haskel/statkit/internal/dataset"
	"github.com/haskel/statkit/internal/stats/survival"
)

var survivalCmd = &cobra.Command{
	Use:   "survival <file>",
	Short: "Estimate a Kaplan-Meier survival curve",
	Long: `Read a list of {time, event} observations and print the Kaplan-Meier
step function. event=1 marks an observed event, event=0 a censored subject.

Examples:
  statkit survival trial.json
  statkit generate survival -n 50 | statkit survival -`,
	Args: cobra.ExactArgs(1),
	RunE: runSurvival,
}

func init() {
	rootCmd.AddCommand(survivalCmd)
}

type survivalOutput struct {
	Points     survival.Curve `json:"points"`
	MedianTime *float64       `json:"median_time"`
}

func runSurvival(cmd *cobra.Command, args []string) error {
	obs, err := dataset.ReadObservations(args[0])
	if err != nil {
		return err
	}
	log.Debug("estimating survival curve", "observations", len(obs))

	curve, err := survival.Estimate(obs)
	if err != nil {
		return fmt.Errorf("failed to estimate survival curve: %w", err)
	}

	res := survivalOutput{Points: curve}
	if median, ok := curve.MedianTime(); ok {
		res.MedianTime = &median
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, res)
	}

	fmt.Fprintf(out, "=== Kaplan-Meier Estimate ===\n")
	fmt.Fprintf(out, "Observations: %d\n\n", len(obs))
	fmt.Fprintf(out, "%10s  %8s\n", "time", "S(t)")
	for _, p := range curve {
		fmt.Fprintf(out, "%10.3f  %8.4f\n", p.Time, p.Survival)
	}
	fmt.Fprintln(out)
	if res.MedianTime != nil {
		fmt.Fprintf(out, "Median survival time: %.3f\n", *res.MedianTime)
	} else {
		fmt.Fprintln(out, "Median survival time: not reached")
	}
	return nil
}

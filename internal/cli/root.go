package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/statkit/internal/config"
	"github.com/haskel/statkit/internal/dataset"
	"github.com/haskel/statkit/internal/logger"
)

var (
	// Global flags
	cfgFile string
	jsonOut bool
	verbose bool

	// Populated before every command runs
	cfg *config.Config
	log *slog.Logger

	// Version info (set from main)
	Version = "0.1.0"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "statkit",
	Short: "Statistics kernel behind the teaching widgets",
	Long: `Statkit exposes the numeric routines of the teaching widgets:
Kaplan-Meier survival curves, a Laplace-smoothed naive Bayes text classifier,
rank and binary association measures, and outlier-robust location estimators.

Samples are read from JSON or YAML files ("-" reads JSON from stdin), and
"statkit generate" produces synthetic samples in the same format.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded
	log = logger.New(cfg.Logging, verbose)
	log.Debug("configuration loaded", "path", cfgFile, "command", cmd.Name())
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

// IsJSON returns whether JSON output is enabled
func IsJSON() bool {
	return jsonOut
}

// IsVerbose returns whether verbose output is enabled
func IsVerbose() bool {
	return verbose
}

func printJSON(w io.Writer, v any) error {
	return dataset.Write(w, v)
}

// floatFlag returns the flag value when the user set it, and def otherwise.
func floatFlag(cmd *cobra.Command, name string, def float64) float64 {
	if !cmd.Flags().Changed(name) {
		return def
	}
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return def
	}
	return v
}

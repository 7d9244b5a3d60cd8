package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// globalFlags holds the parsed values of the persistent flags.
var globalFlags struct {
	Config  string
	Verbose bool
}

// rootCmd is the base command. Running `goanomaly` with no subcommand
// prints help.
var rootCmd = &cobra.Command{
	Use:   "goanomaly",
	Short: "goanomaly: S-H-ESD anomaly detection for time series",
	Long: `goanomaly detects point anomalies in seasonal univariate time series
using the Seasonal-Hybrid ESD method: robust seasonal-trend decomposition
followed by an iterative generalized ESD test on the residual.

Quick start:
  goanomaly period data.csv               # suggest a seasonal period
  goanomaly detect data.csv --period 24   # detect anomalies`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if globalFlags.Verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.Config, "config", "",
		"path to a YAML config file with detection settings")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false,
		"log per-iteration detection progress")
}

// Execute is the entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goanomaly/stats"
	"github.com/sartorproj/goanomaly/timeseries"
)

var periodFlags struct {
	MaxLag      int
	ValueColumn string
}

var periodCmd = &cobra.Command{
	Use:   "period <csv-file>",
	Short: "Suggest a seasonal period for a CSV time series",
	Long: `Period estimates the seasonal period of a series from the strongest
local peak of its autocorrelation function. The suggestion is a starting
point; detection still requires an explicit --period.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := timeseries.DefaultCSVOptions()
		opts.ValueColumn = periodFlags.ValueColumn

		series, err := timeseries.LoadCSV(args[0], opts)
		if err != nil {
			return err
		}
		clean := series.DropMissing()

		period, err := stats.EstimatePeriod(clean, periodFlags.MaxLag)
		if err != nil {
			return err
		}
		fmt.Printf("Suggested period: %d (from %d observations)\n", period, clean.Len())
		return nil
	},
}

func init() {
	periodCmd.Flags().IntVar(&periodFlags.MaxLag, "max-lag", 0,
		"largest lag to search (0 = half the series length)")
	periodCmd.Flags().StringVar(&periodFlags.ValueColumn, "value-column", "value",
		"CSV column holding the observed values")

	rootCmd.AddCommand(periodCmd)
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sartorproj/goanomaly/anomaly"
	"github.com/sartorproj/goanomaly/timeseries"
)

var detectFlags struct {
	Period      int
	K           float64
	Alpha       float64
	Direction   string
	NoDecomp    bool
	ValueColumn string
	DateColumn  string
	DateFormat  string
	Expected    bool
}

var detectCmd = &cobra.Command{
	Use:   "detect <csv-file>",
	Short: "Detect anomalies in a CSV time series",
	Long: `Detect runs S-H-ESD anomaly detection on a CSV time series and prints
the anomalous observations. The seasonal period (observations per cycle,
e.g. 24 for hourly data with daily seasonality) is required, either via
--period or a config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().IntVarP(&detectFlags.Period, "period", "p", 0,
		"observations per seasonal cycle (required)")
	detectCmd.Flags().Float64VarP(&detectFlags.K, "k", "k", 0.49,
		"maximum fraction of the series to flag as anomalous")
	detectCmd.Flags().Float64VarP(&detectFlags.Alpha, "alpha", "a", 0.05,
		"statistical significance level")
	detectCmd.Flags().StringVarP(&detectFlags.Direction, "direction", "d", "pos",
		"anomaly direction: pos, neg, or both")
	detectCmd.Flags().BoolVar(&detectFlags.NoDecomp, "no-decomp", false,
		"skip seasonal decomposition and test raw values minus median")
	detectCmd.Flags().StringVar(&detectFlags.ValueColumn, "value-column", "value",
		"CSV column holding the observed values")
	detectCmd.Flags().StringVar(&detectFlags.DateColumn, "date-column", "",
		"CSV column holding timestamps (omit for ordinal series)")
	detectCmd.Flags().StringVar(&detectFlags.DateFormat, "date-format", "2006-01-02 15:04:05",
		"Go layout for parsing the date column")
	detectCmd.Flags().BoolVar(&detectFlags.Expected, "expected", false,
		"also print the expected (trend+seasonal) value per anomaly")

	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	if globalFlags.Config != "" {
		cfg, err := loadConfig(globalFlags.Config)
		if err != nil {
			return err
		}
		applyConfig(cmd, cfg)
	}

	series, err := loadSeries(args[0])
	if err != nil {
		return err
	}

	opts := anomaly.DefaultOptions()
	opts.Period = detectFlags.Period
	opts.K = detectFlags.K
	opts.Alpha = detectFlags.Alpha
	opts.UseDecomp = !detectFlags.NoDecomp
	opts.Verbose = globalFlags.Verbose
	if err := opts.SetDirection(anomaly.Direction(detectFlags.Direction)); err != nil {
		return err
	}

	result, err := anomaly.Detect(series, opts)
	if err != nil {
		return err
	}

	if len(result.Anomalies) == 0 {
		fmt.Println("No anomalies detected.")
		return nil
	}

	printAnomalies(series, result)
	return nil
}

// applyConfig copies config file values into the detect flags, keeping
// values from flags the user set explicitly.
func applyConfig(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if cfg.Period != 0 && !flags.Changed("period") {
		detectFlags.Period = cfg.Period
	}
	if cfg.K != 0 && !flags.Changed("k") {
		detectFlags.K = cfg.K
	}
	if cfg.Alpha != 0 && !flags.Changed("alpha") {
		detectFlags.Alpha = cfg.Alpha
	}
	if cfg.Direction != "" && !flags.Changed("direction") {
		detectFlags.Direction = cfg.Direction
	}
	if cfg.Decompose != nil && !flags.Changed("no-decomp") {
		detectFlags.NoDecomp = !*cfg.Decompose
	}
	if cfg.ValueColumn != "" && !flags.Changed("value-column") {
		detectFlags.ValueColumn = cfg.ValueColumn
	}
	if cfg.DateColumn != "" && !flags.Changed("date-column") {
		detectFlags.DateColumn = cfg.DateColumn
	}
	if cfg.DateFormat != "" && !flags.Changed("date-format") {
		detectFlags.DateFormat = cfg.DateFormat
	}
}

func loadSeries(path string) (*timeseries.Series, error) {
	opts := timeseries.DefaultCSVOptions()
	opts.ValueColumn = detectFlags.ValueColumn
	opts.DateColumn = detectFlags.DateColumn
	opts.DateFormat = detectFlags.DateFormat
	opts.KeepMissing = true
	return timeseries.LoadCSV(path, opts)
}

func printAnomalies(series *timeseries.Series, result *anomaly.Result) {
	tw := tablewriter.NewWriter(os.Stdout)
	header := []string{"#", "TIMESTAMP", "VALUE"}
	if detectFlags.Expected && result.Expected != nil {
		header = append(header, "EXPECTED")
	}
	tw.SetHeader(header)
	tw.SetBorder(true)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, a := range result.Anomalies {
		var when string
		if series.DateIndexed {
			when = timeseries.FormatTimestamp(a.Timestamp)
		} else {
			when = strconv.Itoa(a.Index + 1)
		}
		row := []string{
			strconv.Itoa(i + 1),
			when,
			strconv.FormatFloat(a.Value, 'f', -1, 64),
		}
		if detectFlags.Expected && result.Expected != nil {
			row = append(row,
				strconv.FormatFloat(result.Expected.Values[a.Index], 'f', -1, 64))
		}
		tw.Append(row)
	}
	tw.Render()

	fmt.Printf("%d anomalies in %d observations\n", len(result.Anomalies), series.Len())
}

package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (optional; absent means ordinal series)
	ValueColumn string // Column name for values (default: "value")
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
	KeepMissing bool   // Keep NA/empty values as NaN instead of skipping the row
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "value",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, dateIdx := -1, -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")):
				valueIdx = i
			case opts.DateColumn != "" && h == opts.DateColumn:
				dateIdx = i
			case h == "ds" || h == "date" || h == "Date" || h == "timestamp":
				if dateIdx == -1 {
					dateIdx = i
				}
			}
		}

		if valueIdx == -1 {
			// Default to last column if not found
			valueIdx = len(header) - 1
		}
	} else {
		dateIdx = 0 // Assume first column is date
		valueIdx = 1
	}

	var values []float64
	var timestamps []time.Time

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if valueIdx < 0 || valueIdx >= len(record) {
			continue
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		var val float64
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			if !opts.KeepMissing {
				continue
			}
			val = math.NaN()
		} else {
			val, err = strconv.ParseFloat(valStr, 64)
			if err != nil {
				continue // Skip invalid values
			}
		}
		values = append(values, val)

		if dateIdx >= 0 && dateIdx < len(record) {
			dateStr := strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
			formats := []string{
				opts.DateFormat,
				"2006-01-02",
				"2006-01-02T15:04:05",
				"2006-01-02 15:04:05",
				"2006/01/02",
				"01/02/2006",
				"2006",
			}
			var ts time.Time
			for _, f := range formats {
				ts, err = time.Parse(f, dateStr)
				if err == nil {
					break
				}
			}
			if err == nil {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	if len(timestamps) == len(values) {
		return NewWithTimestamps(timestamps, values)
	}

	return New(values), nil
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// SaveCSV saves a time series to a CSV file. Date-indexed series write a
// timestamp column; ordinal series write a 1-based index column.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	if series.DateIndexed {
		writer.WriteString("timestamp,value\n")
	} else {
		writer.WriteString("index,value\n")
	}

	for i, v := range series.Values {
		if series.DateIndexed {
			writer.WriteString(series.Timestamps[i].Format("2006-01-02 15:04:05"))
		} else {
			writer.WriteString(strconv.Itoa(i + 1))
		}
		writer.WriteString(",")
		if math.IsNaN(v) {
			writer.WriteString("NA")
		} else {
			writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		writer.WriteString("\n")
	}

	return nil
}

// Command goanomaly detects anomalies in time series data from the
// command line using the S-H-ESD method.
package main

func main() {
	Execute()
}

// Command pdmgram computes Phase Dispersion Minimization periodograms of
// irregularly sampled observations stored in CSV or XLSX files.
//
// Usage:
//
//	pdmgram run [flags] <file>
//	pdmgram grid [flags]
//
// Examples:
//
//	pdmgram run --min-freq 0.01 --max-freq 2 --n-freqs 5000 lightcurve.csv
//	pdmgram run --config pdm.yaml --format json lightcurve.xlsx
//	pdmgram run --time-format rfc3339 --time-column timestamp sensor.csv
//	pdmgram grid --min-freq 0.5 --max-freq 2 --n-freqs 4
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

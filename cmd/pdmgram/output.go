package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

type gridOutput struct {
	Frequencies []float64 `json:"frequencies"`
	Theta       []float64 `json:"theta,omitempty"`
}

// writeColumns prints frequencies, and theta when non-nil, in format.
func writeColumns(w io.Writer, format string, freqs, theta []float64) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(gridOutput{Frequencies: freqs, Theta: theta})
	case formatCSV:
		cw := csv.NewWriter(w)
		header := []string{"frequency"}
		if theta != nil {
			header = append(header, "theta")
		}

		err := cw.Write(header)
		if err != nil {
			return err
		}

		for i, f := range freqs {
			rec := []string{strconv.FormatFloat(f, 'g', -1, 64)}
			if theta != nil {
				rec = append(rec, strconv.FormatFloat(theta[i], 'g', -1, 64))
			}

			err = cw.Write(rec)
			if err != nil {
				return err
			}
		}

		cw.Flush()
		return cw.Error()
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		if theta != nil {
			fmt.Fprintln(tw, "FREQUENCY\tPERIOD\tTHETA")
			for i, f := range freqs {
				fmt.Fprintf(tw, "%.8g\t%s\t%.6f\n", f, period(f), theta[i])
			}
		} else {
			fmt.Fprintln(tw, "FREQUENCY\tPERIOD")
			for _, f := range freqs {
				fmt.Fprintf(tw, "%.8g\t%s\n", f, period(f))
			}
		}

		return tw.Flush()
	}
}

func period(f float64) string {
	if f == 0 {
		return "inf"
	}

	return strconv.FormatFloat(1/f, 'g', 8, 64)
}

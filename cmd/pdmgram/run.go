package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-pdm/stats/pdm"
	"github.com/cwbudde/algo-pdm/stats/pdm/timeaxis"
)

// runOptions holds flags of the run and grid commands.
type runOptions struct {
	root *rootOptions

	configPath        string
	minFreq           float64
	maxFreq           float64
	nFreqs            int
	nBins             int
	workers           int
	parallelThreshold int
	timeColumn        string
	signalColumn      string
	timeFormat        string
	sheet             string
}

func (o *runOptions) addGridFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", "", "YAML file with default settings")
	cmd.Flags().Float64Var(&o.minFreq, "min-freq", 0, "lowest frequency in Hz (cycles per time unit)")
	cmd.Flags().Float64Var(&o.maxFreq, "max-freq", 0, "highest frequency in Hz")
	cmd.Flags().IntVarP(&o.nFreqs, "n-freqs", "n", 1000, "number of frequencies")
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{root: root}

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Compute a periodogram from a CSV or XLSX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0])
		},
	}

	opts.addGridFlags(cmd)
	cmd.Flags().IntVarP(&opts.nBins, "n-bins", "b", pdm.DefaultBins, "number of phase bins")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "maximum sweep goroutines (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&opts.parallelThreshold, "parallel-threshold", pdm.DefaultParallelThreshold, "grid size at which the sweep runs in parallel")
	cmd.Flags().StringVar(&opts.timeColumn, "time-column", "time", "name of the time column")
	cmd.Flags().StringVar(&opts.signalColumn, "signal-column", "signal", "name of the signal column")
	cmd.Flags().StringVar(&opts.timeFormat, "time-format", timeSeconds, "time column format (seconds|rfc3339)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "XLSX sheet name (default: first sheet)")

	return cmd
}

func (o *runOptions) run(cmd *cobra.Command, path string) error {
	s, err := o.resolve(cmd)
	if err != nil {
		return usageError(err)
	}

	rows, err := readTable(path, s.sheet)
	if err != nil {
		return usageError(err)
	}

	axis, signal, err := observations(rows, s.timeColumn, s.signalColumn, s.timeFormat)
	if err != nil {
		return usageError(err)
	}

	logger := o.root.logger
	logger.Debug("observations loaded", "path", path, "samples", axis.Len(), "time_kind", axis.Kind())

	cfg := s.pdmConfig(pdm.WithLogger(logger), pdm.WithDiagnostics(o.root.verbose))

	p, err := timeaxis.Periodogram(axis, signal, cfg)
	if err != nil {
		return computeError(err)
	}

	return writeColumns(cmd.OutOrStdout(), o.root.format, p.Frequencies, p.Theta)
}

func newGridCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{root: root}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the frequency grid a run would evaluate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.resolve(cmd)
			if err != nil {
				return usageError(err)
			}

			grid, err := pdm.FrequencyGrid(s.minFreq, s.maxFreq, s.nFreqs)
			if err != nil {
				return usageError(err)
			}

			return writeColumns(cmd.OutOrStdout(), root.format, grid, nil)
		},
	}

	opts.addGridFlags(cmd)

	return cmd
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
)

// Output formats.
const (
	formatText = "text"
	formatCSV  = "csv"
	formatJSON = "json"
)

var validFormats = []string{formatText, formatCSV, formatJSON}

// rootOptions holds global flags for all commands.
type rootOptions struct {
	verbose bool
	format  string
	logger  *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "pdmgram",
		Short:         "Phase Dispersion Minimization periodograms",
		Long:          "Computes PDM theta periodograms for irregularly sampled time series.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(validFormats, opts.format) {
				return usageError(fmt.Errorf("invalid format %q: must be one of %v", opts.format, validFormats))
			}

			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "print timing diagnostics and debug logs")
	cmd.PersistentFlags().StringVar(&opts.format, "format", formatText, "output format (text|csv|json)")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newGridCommand(opts))

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-pdm/stats/pdm"
)

// fileConfig mirrors the run flags in a YAML file. Zero values are unset.
type fileConfig struct {
	MinFreq           float64 `yaml:"min_freq"`
	MaxFreq           float64 `yaml:"max_freq"`
	NFreqs            int     `yaml:"n_freqs"`
	NBins             int     `yaml:"n_bins"`
	Workers           int     `yaml:"workers"`
	ParallelThreshold int     `yaml:"parallel_threshold"`
	TimeColumn        string  `yaml:"time_column"`
	SignalColumn      string  `yaml:"signal_column"`
	TimeFormat        string  `yaml:"time_format"`
	Sheet             string  `yaml:"sheet"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// settings is the resolved configuration of one run.
type settings struct {
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

// resolve merges defaults, the YAML file and explicitly set flags, in that
// order of increasing precedence.
func (o *runOptions) resolve(cmd *cobra.Command) (settings, error) {
	s := settings{
		minFreq:           o.minFreq,
		maxFreq:           o.maxFreq,
		nFreqs:            o.nFreqs,
		nBins:             o.nBins,
		workers:           o.workers,
		parallelThreshold: o.parallelThreshold,
		timeColumn:        o.timeColumn,
		signalColumn:      o.signalColumn,
		timeFormat:        o.timeFormat,
		sheet:             o.sheet,
	}

	if o.configPath == "" {
		return s, nil
	}

	fc, err := loadConfig(o.configPath)
	if err != nil {
		return s, err
	}

	changed := cmd.Flags().Changed
	setFloat(&s.minFreq, fc.MinFreq, !changed("min-freq"))
	setFloat(&s.maxFreq, fc.MaxFreq, !changed("max-freq"))
	setInt(&s.nFreqs, fc.NFreqs, !changed("n-freqs"))
	setInt(&s.nBins, fc.NBins, !changed("n-bins"))
	setInt(&s.workers, fc.Workers, !changed("workers"))
	setInt(&s.parallelThreshold, fc.ParallelThreshold, !changed("parallel-threshold"))
	setString(&s.timeColumn, fc.TimeColumn, !changed("time-column"))
	setString(&s.signalColumn, fc.SignalColumn, !changed("signal-column"))
	setString(&s.timeFormat, fc.TimeFormat, !changed("time-format"))
	setString(&s.sheet, fc.Sheet, !changed("sheet"))

	return s, nil
}

func setFloat(dst *float64, v float64, ok bool) {
	if ok && v != 0 {
		*dst = v
	}
}

func setInt(dst *int, v int, ok bool) {
	if ok && v != 0 {
		*dst = v
	}
}

func setString(dst *string, v string, ok bool) {
	if ok && v != "" {
		*dst = v
	}
}

// pdmConfig builds the core configuration. Out-of-range bin and frequency
// counts are passed through so that validation reports them.
func (s settings) pdmConfig(opts ...pdm.Option) pdm.Config {
	cfg := pdm.NewConfig(s.minFreq, s.maxFreq, s.nFreqs, opts...)
	cfg.NBins = s.nBins

	if s.workers > 0 {
		cfg.Workers = s.workers
	}

	if s.parallelThreshold > 0 {
		cfg.ParallelThreshold = s.parallelThreshold
	}

	return cfg
}

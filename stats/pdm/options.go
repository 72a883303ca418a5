package pdm

import (
	"io"
	"log/slog"
	"runtime"
)

const (
	// DefaultBins is the phase bin count used when none is configured.
	DefaultBins = 10

	// DefaultParallelThreshold is the smallest grid evaluated in parallel.
	// Below it goroutine dispatch costs more than it saves.
	DefaultParallelThreshold = 64
)

// Config defines a periodogram run.
type Config struct {
	MinFreq float64 // first grid frequency, in cycles per time unit
	MaxFreq float64 // last grid frequency
	NFreqs  int     // number of grid frequencies, >= 1
	NBins   int     // number of phase bins, >= 1

	// Workers bounds the number of goroutines used by the sweep.
	// Values < 1 are treated as 1.
	Workers int

	// ParallelThreshold is the grid length at which the sweep switches
	// from sequential to parallel evaluation.
	ParallelThreshold int

	// Diagnostics enables timing collection and a report logged at Info level.
	// It never affects the numeric result.
	Diagnostics bool

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a configuration with sensible defaults and an empty
// frequency range. Callers must set MinFreq, MaxFreq and NFreqs.
func DefaultConfig() Config {
	return Config{
		NBins:             DefaultBins,
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// NewConfig returns the default configuration for the given frequency range
// with opts applied in order.
func NewConfig(minFreq, maxFreq float64, nFreqs int, opts ...Option) Config {
	cfg := DefaultConfig()
	cfg.MinFreq = minFreq
	cfg.MaxFreq = maxFreq
	cfg.NFreqs = nFreqs

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithBins sets the number of phase bins.
func WithBins(nBins int) Option {
	return func(cfg *Config) {
		if nBins > 0 {
			cfg.NBins = nBins
		}
	}
}

// WithWorkers sets the maximum number of sweep goroutines.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithParallelThreshold sets the grid length at which the sweep goes parallel.
// A threshold of 1 parallelizes every grid.
func WithParallelThreshold(threshold int) Option {
	return func(cfg *Config) {
		if threshold > 0 {
			cfg.ParallelThreshold = threshold
		}
	}
}

// WithDiagnostics toggles the timing report.
func WithDiagnostics(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Diagnostics = enabled
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (c Config) workers() int {
	if c.Workers < 1 {
		return 1
	}

	return c.Workers
}

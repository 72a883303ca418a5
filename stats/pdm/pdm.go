package pdm

import "time"

// Periodogram pairs a frequency grid with its theta values.
type Periodogram struct {
	Frequencies []float64
	Theta       []float64
}

// Len returns the number of evaluated frequencies.
func (p Periodogram) Len() int {
	return len(p.Frequencies)
}

// Compute evaluates the PDM periodogram of (times, signal) over the grid
// described by cfg. times and signal are read but never modified.
//
// All preconditions are checked before any work starts, including that every
// sample is finite. The result is either
// complete or absent: on error the returned Periodogram is empty.
func Compute(times, signal []float64, cfg Config) (Periodogram, error) {
	p, _, err := ComputeWithReport(times, signal, cfg)
	return p, err
}

// ComputeWithReport is like [Compute] and additionally returns timing and
// scheduling details of the run. When cfg.Diagnostics is set the report is
// also logged.
func ComputeWithReport(times, signal []float64, cfg Config) (Periodogram, Report, error) {
	err := Validate(times, signal, cfg)
	if err != nil {
		return Periodogram{}, Report{}, err
	}

	start := time.Now()

	grid := generateGrid(cfg.MinFreq, cfg.MaxFreq, cfg.NFreqs)
	gridDone := time.Now()

	variance := sampleVariance(signal)

	sw := sweeper{
		nBins:     cfg.NBins,
		workers:   cfg.workers(),
		threshold: cfg.ParallelThreshold,
		eval: func(acc []binAccumulator, freq float64) float64 {
			fold(acc, times, signal, freq)
			return theta(acc, variance)
		},
	}

	thetas, mode, err := sw.run(grid)
	if err != nil {
		return Periodogram{}, Report{}, err
	}

	end := time.Now()

	report := Report{
		Samples:     len(times),
		Frequencies: len(grid),
		Bins:        cfg.NBins,
		Workers:     1,
		Mode:        mode,
		CPU:         cpuSummary(),
		Grid:        gridDone.Sub(start),
		Sweep:       end.Sub(gridDone),
		Total:       end.Sub(start),
	}

	if mode == ModeParallel {
		report.Workers = min(sw.workers, len(grid))
	}

	if cfg.Diagnostics {
		cfg.logger().Info("pdm: periodogram computed", "report", report)
	}

	return Periodogram{Frequencies: grid, Theta: thetas}, report, nil
}

// Validate checks every precondition of [Compute] without computing anything.
func Validate(times, signal []float64, cfg Config) error {
	err := validateSamples(times, signal)
	if err != nil {
		return err
	}

	err = validateRange(cfg.MinFreq, cfg.MaxFreq, cfg.NFreqs)
	if err != nil {
		return err
	}

	return validateBins(cfg.NBins)
}

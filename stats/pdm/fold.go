package pdm

import (
	"fmt"
	"math"
)

// BinStats summarizes the samples folded into one phase bin.
type BinStats struct {
	Count    int
	Mean     float64
	Variance float64 // sample variance, 0 for fewer than 2 samples
}

// binAccumulator holds Welford running moments for one phase bin.
type binAccumulator struct {
	n    int
	mean float64
	m2   float64 // sum of squared deviations from the running mean
}

func (a *binAccumulator) add(x float64) {
	a.n++
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (x - a.mean)
}

func (a *binAccumulator) stats() BinStats {
	s := BinStats{Count: a.n, Mean: a.mean}
	if a.n >= 2 {
		s.Variance = a.m2 / float64(a.n-1)
	}

	return s
}

// Phase returns the fractional part of t·freq mapped into [0, 1], using
// x - floor(x) so that negative products wrap upwards. A tiny negative
// product can round to exactly 1; BinIndex absorbs that case.
func Phase(t, freq float64) float64 {
	x := t * freq
	return x - math.Floor(x)
}

// BinIndex returns the bin of phase among nBins equal-width bins,
// clamped to [0, nBins-1]. A phase of exactly 1 lands in the last bin.
func BinIndex(phase float64, nBins int) int {
	b := int(phase * float64(nBins))
	if b >= nBins {
		return nBins - 1
	}

	if b < 0 {
		return 0
	}

	return b
}

// fold resets acc and accumulates every sample into the phase bin it falls
// in at freq. The bin count is len(acc).
func fold(acc []binAccumulator, times, signal []float64, freq float64) {
	clear(acc)

	nBins := len(acc)
	for i, t := range times {
		acc[BinIndex(Phase(t, freq), nBins)].add(signal[i])
	}
}

// FoldBins folds the samples at freq into nBins phase bins and returns the
// per-bin statistics.
func FoldBins(times, signal []float64, freq float64, nBins int) ([]BinStats, error) {
	err := validateSamples(times, signal)
	if err != nil {
		return nil, err
	}

	err = validateBins(nBins)
	if err != nil {
		return nil, err
	}

	acc := make([]binAccumulator, nBins)
	fold(acc, times, signal, freq)

	out := make([]BinStats, nBins)
	for i := range acc {
		out[i] = acc[i].stats()
	}

	return out, nil
}

func validateSamples(times, signal []float64) error {
	if len(times) != len(signal) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(times), len(signal))
	}

	if len(times) == 0 {
		return ErrEmptyInput
	}

	for i := range times {
		if !isFinite(times[i]) || !isFinite(signal[i]) {
			return fmt.Errorf("%w: sample %d is (%g, %g)", ErrNonFiniteSample, i, times[i], signal[i])
		}
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func validateBins(nBins int) error {
	if nBins < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidBinCount, nBins)
	}

	return nil
}

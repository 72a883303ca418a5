package pdm

import (
	"fmt"
	"math"
)

// FrequencyGrid returns nFreqs evenly spaced frequencies from minFreq to
// maxFreq inclusive. A single-frequency grid holds only minFreq.
//
// The bounds must be finite with minFreq < maxFreq, and nFreqs must be >= 1.
func FrequencyGrid(minFreq, maxFreq float64, nFreqs int) ([]float64, error) {
	err := validateRange(minFreq, maxFreq, nFreqs)
	if err != nil {
		return nil, err
	}

	return generateGrid(minFreq, maxFreq, nFreqs), nil
}

func validateRange(minFreq, maxFreq float64, nFreqs int) error {
	if nFreqs < 1 {
		return fmt.Errorf("%w: n_freqs must be >= 1, got %d", ErrInvalidFrequencyRange, nFreqs)
	}

	if math.IsNaN(minFreq) || math.IsNaN(maxFreq) || math.IsInf(minFreq, 0) || math.IsInf(maxFreq, 0) {
		return fmt.Errorf("%w: bounds must be finite, got [%g, %g]", ErrInvalidFrequencyRange, minFreq, maxFreq)
	}

	if minFreq >= maxFreq {
		return fmt.Errorf("%w: min_freq %g must be less than max_freq %g", ErrInvalidFrequencyRange, minFreq, maxFreq)
	}

	return nil
}

// generateGrid assumes a validated range.
func generateGrid(minFreq, maxFreq float64, nFreqs int) []float64 {
	grid := make([]float64, nFreqs)
	grid[0] = minFreq

	if nFreqs == 1 {
		return grid
	}

	step := (maxFreq - minFreq) / float64(nFreqs-1)
	for i := 1; i < nFreqs-1; i++ {
		grid[i] = minFreq + float64(i)*step
	}

	// Pin the endpoint; min + (n-1)*step can miss it by an ulp.
	grid[nFreqs-1] = maxFreq

	return grid
}

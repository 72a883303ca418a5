package pdm

import "gonum.org/v1/gonum/stat"

// theta evaluates the Stellingwerf statistic for folded bins against the
// sample variance of the whole signal.
//
//	s²_pooled = Σ (n_j - 1)·v_j / Σ (n_j - 1), over bins with n_j >= 2
//	theta     = s²_pooled / s²
//
// (n_j - 1)·v_j is the bin's Welford m2. Degenerate ratios are 0.
func theta(acc []binAccumulator, totalVariance float64) float64 {
	// One bin has no phase resolution and no dispersion to compare.
	if len(acc) < 2 {
		return 0
	}

	var (
		sumM2 float64
		dof   int
	)

	for i := range acc {
		if acc[i].n < 2 {
			continue
		}

		sumM2 += acc[i].m2
		dof += acc[i].n - 1
	}

	if dof == 0 || totalVariance <= 0 {
		return 0
	}

	t := (sumM2 / float64(dof)) / totalVariance
	if t < 0 {
		return 0
	}

	return t
}

// sampleVariance returns the unbiased variance of signal, or 0 for fewer
// than two samples.
func sampleVariance(signal []float64) float64 {
	if len(signal) < 2 {
		return 0
	}

	_, variance := stat.MeanVariance(signal, nil)
	if variance < 0 {
		return 0
	}

	return variance
}

// Theta returns the PDM statistic of the samples folded at freq into nBins
// phase bins.
func Theta(times, signal []float64, freq float64, nBins int) (float64, error) {
	err := validateSamples(times, signal)
	if err != nil {
		return 0, err
	}

	err = validateBins(nBins)
	if err != nil {
		return 0, err
	}

	acc := make([]binAccumulator, nBins)
	fold(acc, times, signal, freq)

	return theta(acc, sampleVariance(signal)), nil
}

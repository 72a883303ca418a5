// Package pdm computes Phase Dispersion Minimization periodograms for
// irregularly sampled time series.
//
// For every candidate frequency f of an evenly spaced grid, the samples are
// folded into phase φ = frac(t·f), distributed over a fixed number of equal
// width phase bins, and the Stellingwerf dispersion statistic
//
//	theta(f) = s²_pooled / s²
//
// is evaluated, where s²_pooled is the within-bin variance pooled over all bins
// holding at least two samples and s² is the variance of the whole signal.
// Theta close to 0 indicates phase coherence (a good period candidate), theta
// close to 1 indicates no improvement over the total scatter.
//
// The package does not locate minima, estimate false-alarm probabilities or
// detrend the input. It returns the raw (frequency, theta) curve.
//
// Frequencies are evaluated independently. Large grids are split across a
// bounded set of goroutines, each writing only its own result slots, so the
// output is bit-identical to a sequential sweep.
package pdm

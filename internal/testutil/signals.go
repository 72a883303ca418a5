package testutil

import (
	"math"
	"math/rand"
)

// IrregularTimes returns n sample times drawn uniformly from [0, span) with a
// fixed seed. The times are not sorted.
func IrregularTimes(seed int64, span float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64() * span
	}
	return out
}

// UniformTimes returns n times starting at 0 spaced by step.
func UniformTimes(step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

// SineAt samples amplitude·sin(2π·freq·t) at the given times.
func SineAt(times []float64, freq, amplitude float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*t)
	}
	return out
}

// SquareAt samples a ±amplitude square wave of the given frequency at times.
// The wave is +amplitude for the first half of each cycle.
func SquareAt(times []float64, freq, amplitude float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		x := t * freq
		if x-math.Floor(x) < 0.5 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

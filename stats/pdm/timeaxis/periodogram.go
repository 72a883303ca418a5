package timeaxis

import (
	"fmt"

	"github.com/cwbudde/algo-pdm/stats/pdm"
)

// Periodogram computes the PDM periodogram of signal sampled on axis.
// cfg.MinFreq and cfg.MaxFreq are in hertz, and so are the returned
// frequencies, whatever the axis kind.
func Periodogram(axis Axis, signal []float64, cfg pdm.Config) (pdm.Periodogram, error) {
	p, _, err := PeriodogramWithReport(axis, signal, cfg)
	return p, err
}

// PeriodogramWithReport is like [Periodogram] and also returns the run report.
func PeriodogramWithReport(axis Axis, signal []float64, cfg pdm.Config) (pdm.Periodogram, pdm.Report, error) {
	// Reject in the caller's units so error messages quote the given bounds.
	err := pdm.Validate(axis.Values(), signal, cfg)
	if err != nil {
		return pdm.Periodogram{}, pdm.Report{}, err
	}

	native := cfg
	native.MinFreq = axis.ToNative(cfg.MinFreq)
	native.MaxFreq = axis.ToNative(cfg.MaxFreq)

	// Bounds a few ulps apart in hertz can round to one value per nanosecond.
	if native.MinFreq >= native.MaxFreq {
		return pdm.Periodogram{}, pdm.Report{}, fmt.Errorf(
			"%w: min_freq %g and max_freq %g collapse to %g cycles per nanosecond",
			pdm.ErrInvalidFrequencyRange, cfg.MinFreq, cfg.MaxFreq, native.MinFreq)
	}

	p, report, err := pdm.ComputeWithReport(axis.Values(), signal, native)
	if err != nil {
		return pdm.Periodogram{}, pdm.Report{}, err
	}

	p.Frequencies = axis.ToHertz(p.Frequencies)

	// The scale round trip can move the endpoints by an ulp.
	p.Frequencies[0] = cfg.MinFreq
	if n := len(p.Frequencies); n > 1 {
		p.Frequencies[n-1] = cfg.MaxFreq
	}

	return p, report, nil
}

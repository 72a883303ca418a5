// Package timeaxis adapts host time representations to the seconds-or-native
// float64 axis expected by package pdm.
//
// Plain numeric offsets are used as-is. Calendar timestamps and durations are
// expressed in nanoseconds, so frequency bounds given in hertz are scaled to
// cycles per nanosecond before the sweep and the returned grid is scaled back
// afterwards. Conversion happens strictly before and after the sweep.
package timeaxis

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-vecmath"
)

// ErrUnsupportedTimeRepresentation is returned for time values that cannot be
// interpreted as seconds or converted to nanoseconds.
var ErrUnsupportedTimeRepresentation = errors.New("timeaxis: unsupported time representation")

const nanosPerSecond = 1e9

// Kind identifies how an Axis was built.
type Kind int

// Supported time representations.
const (
	KindSeconds  Kind = iota // numeric offsets in seconds
	KindCalendar             // wall-clock timestamps, nanoseconds since the Unix epoch
	KindDuration             // elapsed durations, nanoseconds
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSeconds:
		return "seconds"
	case KindCalendar:
		return "calendar"
	case KindDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// Axis is a read-only float64 view of observation times.
type Axis struct {
	kind   Kind
	values []float64
}

// FromSeconds wraps offsets in seconds. The slice is borrowed, not copied.
func FromSeconds(seconds []float64) Axis {
	return Axis{kind: KindSeconds, values: seconds}
}

// FromTimes converts timestamps to nanoseconds since the Unix epoch.
// Timestamps outside the range of time.Time.UnixNano are not supported.
func FromTimes(times []time.Time) Axis {
	values := make([]float64, len(times))
	for i, t := range times {
		values[i] = float64(t.UnixNano())
	}

	return Axis{kind: KindCalendar, values: values}
}

// FromDurations converts elapsed durations to nanoseconds.
func FromDurations(offsets []time.Duration) Axis {
	values := make([]float64, len(offsets))
	for i, d := range offsets {
		values[i] = float64(d.Nanoseconds())
	}

	return Axis{kind: KindDuration, values: values}
}

// FromValues builds an Axis from a slice of a supported element type:
// float64, float32, int, int64 (seconds), time.Time or time.Duration.
func FromValues(v any) (Axis, error) {
	switch x := v.(type) {
	case []float64:
		return FromSeconds(x), nil
	case []float32:
		return FromSeconds(widen(x)), nil
	case []int:
		return FromSeconds(widen(x)), nil
	case []int64:
		return FromSeconds(widen(x)), nil
	case []time.Time:
		return FromTimes(x), nil
	case []time.Duration:
		return FromDurations(x), nil
	default:
		return Axis{}, fmt.Errorf("%w: %T", ErrUnsupportedTimeRepresentation, v)
	}
}

func widen[T float32 | int | int64](in []T) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}

	return out
}

// Kind reports the representation the axis was built from.
func (a Axis) Kind() Kind {
	return a.kind
}

// Len returns the number of samples.
func (a Axis) Len() int {
	return len(a.values)
}

// Values returns the times in native units. Callers must not modify it.
func (a Axis) Values() []float64 {
	return a.values
}

// UnitsPerSecond returns the number of native time units in one second.
func (a Axis) UnitsPerSecond() float64 {
	if a.kind == KindSeconds {
		return 1
	}

	return nanosPerSecond
}

// ToNative converts a frequency in hertz to cycles per native time unit.
func (a Axis) ToNative(hz float64) float64 {
	return hz / a.UnitsPerSecond()
}

// ToHertz rescales native frequencies to hertz in place and returns freqs.
func (a Axis) ToHertz(freqs []float64) []float64 {
	scale := a.UnitsPerSecond()
	if scale == 1 {
		return freqs
	}

	vecmath.ScaleBlockInPlace(freqs, scale)

	return freqs
}

package pdm

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Report describes how a periodogram run was executed.
type Report struct {
	Samples     int
	Frequencies int
	Bins        int
	Workers     int // goroutines that evaluated frequencies
	Mode        Mode
	CPU         string // architecture and detected SIMD extensions

	Grid  time.Duration // frequency grid generation
	Sweep time.Duration // variance, folding and theta evaluation
	Total time.Duration
}

// String formats the report as a short multi-line timing summary.
func (r Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "pdm: %d samples, %d frequencies, %d bins\n", r.Samples, r.Frequencies, r.Bins)
	fmt.Fprintf(&b, "  mode:  %s (%d workers, %s)\n", r.Mode, r.Workers, r.CPU)
	fmt.Fprintf(&b, "  grid:  %v\n", r.Grid)
	fmt.Fprintf(&b, "  sweep: %v\n", r.Sweep)
	fmt.Fprintf(&b, "  total: %v", r.Total)

	return b.String()
}

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("samples", r.Samples),
		slog.Int("frequencies", r.Frequencies),
		slog.Int("bins", r.Bins),
		slog.Int("workers", r.Workers),
		slog.String("mode", string(r.Mode)),
		slog.String("cpu", r.CPU),
		slog.Duration("grid", r.Grid),
		slog.Duration("sweep", r.Sweep),
		slog.Duration("total", r.Total),
	)
}

func cpuSummary() string {
	f := cpu.DetectFeatures()

	parts := []string{f.Architecture}
	switch {
	case f.ForceGeneric:
		parts = append(parts, "generic")
	case f.HasAVX2:
		parts = append(parts, "avx2")
	case f.HasSSE2:
		parts = append(parts, "sse2")
	case f.HasNEON:
		parts = append(parts, "neon")
	}

	return strings.Join(parts, "/")
}

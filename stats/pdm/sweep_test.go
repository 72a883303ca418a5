package pdm

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-pdm/internal/testutil"
)

func linearGrid(n int) []float64 {
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = float64(i)
	}

	return grid
}

func TestSweeper_Mode(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		thresh  int
		gridLen int
		want    Mode
	}{
		{"below threshold", 8, 64, 63, ModeSequential},
		{"at threshold", 8, 64, 64, ModeParallel},
		{"single worker", 1, 1, 1000, ModeSequential},
		{"single frequency", 8, 1, 1, ModeSequential},
		{"threshold one", 2, 1, 2, ModeParallel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sweeper{workers: tt.workers, threshold: tt.thresh}
			if got := s.mode(tt.gridLen); got != tt.want {
				t.Fatalf("mode = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSweeper_PreservesOrder(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 7, 16, 64} {
		grid := linearGrid(37)
		s := sweeper{
			nBins:     3,
			workers:   workers,
			threshold: 1,
			eval: func(acc []binAccumulator, f float64) float64 {
				if len(acc) != 3 {
					panic("wrong accumulator size")
				}
				return 2 * f
			},
		}

		out, _, err := s.run(grid)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}

		for i, v := range out {
			if v != 2*grid[i] {
				t.Fatalf("workers=%d: out[%d] = %v, want %v", workers, i, v, 2*grid[i])
			}
		}
	}
}

func TestSweeper_PanicFailsWholeSweep(t *testing.T) {
	for _, workers := range []int{1, 4} {
		s := sweeper{
			nBins:     2,
			workers:   workers,
			threshold: 1,
			eval: func(_ []binAccumulator, f float64) float64 {
				if f == 13 {
					panic("boom")
				}
				return f
			},
		}

		out, _, err := s.run(linearGrid(20))
		if !errors.Is(err, ErrWorkerPanic) {
			t.Fatalf("workers=%d: err = %v, want ErrWorkerPanic", workers, err)
		}

		if out != nil {
			t.Fatalf("workers=%d: partial result returned: %v", workers, out)
		}
	}
}

func TestCompute_SequentialAndParallelBitIdentical(t *testing.T) {
	times := testutil.IrregularTimes(21, 300, 3000)
	signal := testutil.SineAt(times, 0.123, 1)
	noise := testutil.DeterministicNoise(22, 0.3, len(times))
	for i := range signal {
		signal[i] += noise[i]
	}

	seq, seqReport, err := ComputeWithReport(times, signal, NewConfig(0.01, 0.5, 500, WithWorkers(1)))
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}

	par, parReport, err := ComputeWithReport(times, signal,
		NewConfig(0.01, 0.5, 500, WithWorkers(6), WithParallelThreshold(1)))
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	if seqReport.Mode != ModeSequential || parReport.Mode != ModeParallel {
		t.Fatalf("modes = %s, %s; want sequential, parallel", seqReport.Mode, parReport.Mode)
	}

	testutil.RequireBitIdentical(t, par.Frequencies, seq.Frequencies)
	testutil.RequireBitIdentical(t, par.Theta, seq.Theta)
}

func TestCompute_Idempotent(t *testing.T) {
	times := testutil.IrregularTimes(31, 50, 800)
	signal := testutil.DeterministicNoise(32, 1, len(times))
	cfg := NewConfig(0.1, 3, 257, WithWorkers(4), WithParallelThreshold(8), WithBins(7))

	first, err := Compute(times, signal, cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for range 5 {
		again, err := Compute(times, signal, cfg)
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}

		testutil.RequireBitIdentical(t, again.Theta, first.Theta)
	}
}

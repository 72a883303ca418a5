package pdm

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Mode reports how a sweep was scheduled.
type Mode string

// Sweep scheduling modes.
const (
	ModeSequential Mode = "sequential"
	ModeParallel   Mode = "parallel"
)

// evalFunc computes theta for one frequency using scratch accumulators owned
// by the calling goroutine.
type evalFunc func(acc []binAccumulator, freq float64) float64

// sweeper evaluates a frequency grid.
type sweeper struct {
	nBins     int
	workers   int
	threshold int
	eval      evalFunc
}

func (s sweeper) mode(gridLen int) Mode {
	if s.workers <= 1 || gridLen < 2 || gridLen < s.threshold {
		return ModeSequential
	}

	return ModeParallel
}

// run returns theta for every grid frequency, index-aligned with grid.
// On error no partial result is returned.
func (s sweeper) run(grid []float64) ([]float64, Mode, error) {
	out := make([]float64, len(grid))

	mode := s.mode(len(grid))
	if mode == ModeSequential {
		err := s.runChunk(context.Background(), grid, out)
		if err != nil {
			return nil, mode, err
		}

		return out, mode, nil
	}

	workers := min(s.workers, len(grid))
	chunk := (len(grid) + workers - 1) / workers

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for lo := 0; lo < len(grid); lo += chunk {
		hi := min(lo+chunk, len(grid))
		g.Go(func() error {
			return s.runChunk(ctx, grid[lo:hi], out[lo:hi])
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, mode, err
	}

	return out, mode, nil
}

// runChunk fills out[i] with theta at grid[i]. It stops early once ctx is
// cancelled by a failing sibling.
func (s sweeper) runChunk(ctx context.Context, grid, out []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerPanic, r)
		}
	}()

	acc := make([]binAccumulator, s.nBins)
	for i, f := range grid {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		out[i] = s.eval(acc, f)
	}

	return nil
}

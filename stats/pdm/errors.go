package pdm

import "errors"

// Errors returned by periodogram functions.
var (
	ErrEmptyInput            = errors.New("pdm: time and signal must not be empty")
	ErrLengthMismatch        = errors.New("pdm: time and signal lengths differ")
	ErrNonFiniteSample       = errors.New("pdm: time and signal must be finite")
	ErrInvalidFrequencyRange = errors.New("pdm: invalid frequency range")
	ErrInvalidBinCount       = errors.New("pdm: bin count must be >= 1")
	ErrWorkerPanic           = errors.New("pdm: worker panicked")
)

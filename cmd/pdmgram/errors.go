package main

import (
	"errors"

	"github.com/cwbudde/algo-pdm/stats/pdm"
)

// Exit codes.
const (
	exitSuccess = 0 // periodogram written
	exitFailure = 1 // computation failed after inputs were accepted
	exitUsage   = 2 // bad flags, config, input file or parameters
)

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

// computeError classifies a periodogram error: rejected preconditions are
// usage errors, anything else is a computation failure.
func computeError(err error) error {
	if errors.Is(err, pdm.ErrWorkerPanic) {
		return &exitError{code: exitFailure, err: err}
	}

	return usageError(err)
}

// exitCode extracts the exit code from err. Errors without one come from
// cobra's flag parsing and are usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return exitUsage
}

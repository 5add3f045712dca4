package mixing

import (
	"errors"
	"fmt"
)

// Domain errors for mixing calculations.
var (
	// ErrNoCells indicates an environment list with no propagation cells.
	ErrNoCells = errors.New("mixing: no propagation cells")

	// ErrInvalidEnergy indicates a non-positive photon energy.
	ErrInvalidEnergy = errors.New("mixing: photon energy must be positive")

	// ErrInvalidState indicates a transfer matrix with NaN or Inf entries.
	ErrInvalidState = errors.New("mixing: transfer matrix invalid (NaN or Inf)")

	// ErrCanceled indicates the calculation was interrupted.
	ErrCanceled = errors.New("mixing: calculation canceled by context")

	// ErrNoRuns indicates an ensemble with no realizations requested.
	ErrNoRuns = errors.New("mixing: ensemble needs at least one realization")
)

// EnergyError wraps an error with the grid point it occurred at.
type EnergyError struct {
	Index     int
	EnergyGeV float64
	Wrapped   error
}

func (e *EnergyError) Error() string {
	return fmt.Sprintf("energy %g GeV (index %d): %v", e.EnergyGeV, e.Index, e.Wrapped)
}

func (e *EnergyError) Unwrap() error {
	return e.Wrapped
}

package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrUnstable indicates the bob left finite space.
	ErrUnstable = errors.New("sim: simulation unstable (state diverged)")

	// ErrInvalidInterval indicates a non-positive fixed timestep or duration.
	ErrInvalidInterval = errors.New("sim: interval must be positive")
)

// SimulationError wraps an error with the tick it happened on.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

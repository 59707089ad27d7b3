package orbit

import (
	"errors"
	"fmt"
)

// Domain errors for orbit analysis.
var (
	// ErrInvalidConfig indicates a configuration that violates its invariants.
	ErrInvalidConfig = errors.New("orbit: invalid configuration")

	// ErrSingularity indicates two bodies coincided and the state turned
	// non-finite. Distinct from "not periodic": it terminates the run.
	ErrSingularity = errors.New("orbit: numerical singularity (non-finite state)")
)

// StepError wraps an error with the integration step it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}

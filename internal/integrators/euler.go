package integrators

import (
	"gonum.org/v1/gonum/floats"

	"github.com/diego4rmando/orbitlab/internal/orbit"
)

// Euler is the explicit first-order method. It is kept for integrator
// comparisons; the analysis pipeline defaults to RK4.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys orbit.System, x orbit.State, t, dt float64) orbit.State {
	dx := sys.Derive(x, t)
	result := make(orbit.State, len(x))
	floats.AddScaledTo(result, x, dt, dx)
	return result
}

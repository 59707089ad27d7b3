package orbit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// NumBodies is fixed: the analysis engine only handles the three-body problem.
const NumBodies = 3

// StateDim is the length of a State: (x, y, vx, vy) per body.
const StateDim = NumBodies * 4

// State is the instantaneous configuration of the three bodies as a flat
// vector [x1,y1,vx1,vy1, x2,y2,vx2,vy2, x3,y3,vx3,vy3]. Integration steps
// return fresh vectors; a State held by a caller is never mutated.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsFinite reports whether every component is a finite number.
func (s State) IsFinite() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	return floats.Norm(s, 2)
}

// Distance is the Euclidean distance to other over the full state,
// positions and velocities jointly.
func (s State) Distance(other State) float64 {
	return floats.Distance(s, other, 2)
}

// PositionDistance is the Euclidean distance to other over the six
// position components only. The periodicity detector compares positions
// alone so that a return with time-reversed velocities still counts.
func (s State) PositionDistance(other State) float64 {
	sum := 0.0
	for i := 0; i < NumBodies; i++ {
		dx := s[i*4] - other[i*4]
		dy := s[i*4+1] - other[i*4+1]
		sum += dx*dx + dy*dy
	}
	return math.Sqrt(sum)
}

// System is an ODE system dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Hamiltonian is implemented by systems that expose a conserved total energy.
type Hamiltonian interface {
	Energy(x State) float64
}

// ConservativeSystem combines System and Hamiltonian; the gravity model
// satisfies it, and the energy-drift measurement requires it.
type ConservativeSystem interface {
	System
	Hamiltonian
}

// Integrator advances a state by one fixed step.
type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

// Config is a named three-body initial configuration. It is immutable once
// validated; the analysis layers only ever read it.
type Config struct {
	Name       string      `yaml:"name"`
	Masses     []float64   `yaml:"masses"`
	Positions  [][]float64 `yaml:"positions"`
	Velocities [][]float64 `yaml:"velocities"`
}

// Validate checks the configuration invariants: exactly three bodies,
// strictly positive masses, every numeric field finite.
func (c Config) Validate() error {
	if len(c.Masses) != NumBodies {
		return fmt.Errorf("%w: expected %d masses, got %d", ErrInvalidConfig, NumBodies, len(c.Masses))
	}
	if len(c.Positions) != NumBodies {
		return fmt.Errorf("%w: expected %d positions, got %d", ErrInvalidConfig, NumBodies, len(c.Positions))
	}
	if len(c.Velocities) != NumBodies {
		return fmt.Errorf("%w: expected %d velocities, got %d", ErrInvalidConfig, NumBodies, len(c.Velocities))
	}
	for i, m := range c.Masses {
		if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
			return fmt.Errorf("%w: mass %d must be positive and finite, got %v", ErrInvalidConfig, i+1, m)
		}
	}
	for i := 0; i < NumBodies; i++ {
		if len(c.Positions[i]) != 2 {
			return fmt.Errorf("%w: position %d must have 2 components, got %d", ErrInvalidConfig, i+1, len(c.Positions[i]))
		}
		if len(c.Velocities[i]) != 2 {
			return fmt.Errorf("%w: velocity %d must have 2 components, got %d", ErrInvalidConfig, i+1, len(c.Velocities[i]))
		}
		for _, v := range c.Positions[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite position component for body %d", ErrInvalidConfig, i+1)
			}
		}
		for _, v := range c.Velocities[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite velocity component for body %d", ErrInvalidConfig, i+1)
			}
		}
	}
	return nil
}

// InitialState builds the t=0 state vector from the configuration.
func (c Config) InitialState() State {
	s := make(State, StateDim)
	for i := 0; i < NumBodies; i++ {
		s[i*4] = c.Positions[i][0]
		s[i*4+1] = c.Positions[i][1]
		s[i*4+2] = c.Velocities[i][0]
		s[i*4+3] = c.Velocities[i][1]
	}
	return s
}

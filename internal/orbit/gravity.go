package orbit

import "math"

// G is the gravitational constant in normalized units.
const G = 1.0

// ThreeBody is the Newtonian point-mass gravity model for three bodies in
// the plane. The force law is exact: no softening term. Derive is a pure
// function of its inputs; it holds no mutable state across calls.
type ThreeBody struct {
	masses []float64
}

func NewThreeBody(masses []float64) *ThreeBody {
	m := make([]float64, len(masses))
	copy(m, masses)
	return &ThreeBody{masses: m}
}

func (tb *ThreeBody) StateDim() int { return StateDim }

func (tb *ThreeBody) Masses() []float64 {
	m := make([]float64, len(tb.masses))
	copy(m, tb.masses)
	return m
}

// Derive returns the state derivative: position components are the
// velocities, velocity components are the gravitational accelerations
//
//	a_i = Σ_{j≠i} G * m_j * (r_j - r_i) / |r_j - r_i|^3
//
// Coincident bodies divide by zero and yield non-finite components.
func (tb *ThreeBody) Derive(x State, _ float64) State {
	ds := make(State, StateDim)

	for i := 0; i < NumBodies; i++ {
		ds[i*4] = x[i*4+2]
		ds[i*4+1] = x[i*4+3]
	}

	for i := 0; i < NumBodies; i++ {
		xi, yi := x[i*4], x[i*4+1]
		var ax, ay float64

		for j := 0; j < NumBodies; j++ {
			if j == i {
				continue
			}
			dx := x[j*4] - xi
			dy := x[j*4+1] - yi
			r2 := dx*dx + dy*dy
			r := math.Sqrt(r2)
			f := G * tb.masses[j] / (r2 * r)
			ax += f * dx
			ay += f * dy
		}

		ds[i*4+2] = ax
		ds[i*4+3] = ay
	}

	return ds
}

// Energy is the total mechanical energy: Σ ½ m_i |v_i|² − Σ_{i<j} G m_i m_j / r_ij.
func (tb *ThreeBody) Energy(x State) float64 {
	ke := 0.0
	pe := 0.0

	for i := 0; i < NumBodies; i++ {
		vx, vy := x[i*4+2], x[i*4+3]
		ke += 0.5 * tb.masses[i] * (vx*vx + vy*vy)

		for j := i + 1; j < NumBodies; j++ {
			dx := x[j*4] - x[i*4]
			dy := x[j*4+1] - x[i*4+1]
			r := math.Sqrt(dx*dx + dy*dy)
			pe -= G * tb.masses[i] * tb.masses[j] / r
		}
	}

	return ke + pe
}

// Momentum is the total linear momentum (px, py). With no external force
// it is conserved; the integration tests rely on that.
func (tb *ThreeBody) Momentum(x State) (px, py float64) {
	for i := 0; i < NumBodies; i++ {
		px += tb.masses[i] * x[i*4+2]
		py += tb.masses[i] * x[i*4+3]
	}
	return
}

// AngularMomentum is the total angular momentum about the origin.
func (tb *ThreeBody) AngularMomentum(x State) float64 {
	l := 0.0
	for i := 0; i < NumBodies; i++ {
		xi, yi := x[i*4], x[i*4+1]
		vx, vy := x[i*4+2], x[i*4+3]
		l += tb.masses[i] * (xi*vy - yi*vx)
	}
	return l
}

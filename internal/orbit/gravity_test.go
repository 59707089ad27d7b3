package orbit

import (
	"math"
	"testing"
)

func TestDeriveSymmetricCancellation(t *testing.T) {
	// Equal masses, bodies 1 and 2 symmetric about the origin, body 3 at
	// the origin: the pulls on body 3 cancel exactly.
	tb := NewThreeBody([]float64{1, 1, 1})
	x := State{
		-1, 0, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 0,
	}

	ds := tb.Derive(x, 0)

	if math.Abs(ds[10]) > 1e-15 || math.Abs(ds[11]) > 1e-15 {
		t.Errorf("expected zero acceleration on body 3, got (%g, %g)", ds[10], ds[11])
	}
}

func TestDeriveVelocityPassthrough(t *testing.T) {
	tb := NewThreeBody([]float64{1, 2, 3})
	x := validConfig().InitialState()

	ds := tb.Derive(x, 0)

	for i := 0; i < NumBodies; i++ {
		if ds[i*4] != x[i*4+2] || ds[i*4+1] != x[i*4+3] {
			t.Errorf("body %d position derivative is not its velocity", i+1)
		}
	}
}

func TestDeriveDeterministic(t *testing.T) {
	tb := NewThreeBody([]float64{1, 1, 1})
	x := validConfig().InitialState()

	a := tb.Derive(x, 0)
	b := tb.Derive(x, 0)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("derivative not bit-identical at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestDeriveSingularOnCoincidentBodies(t *testing.T) {
	tb := NewThreeBody([]float64{1, 1, 1})
	x := State{
		0, 0, 0, 0,
		0, 0, 0, 0,
		1, 0, 0, 0,
	}

	ds := tb.Derive(x, 0)

	if ds.IsFinite() {
		t.Error("coincident bodies must produce a non-finite derivative")
	}
}

func TestEnergyStationary(t *testing.T) {
	// Zero velocities: E = PE = -(1/2 + 1/1 + 1/1) = -2.5.
	tb := NewThreeBody([]float64{1, 1, 1})
	x := State{
		-1, 0, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 0,
	}

	if e := tb.Energy(x); math.Abs(e-(-2.5)) > 1e-12 {
		t.Errorf("expected energy -2.5, got %g", e)
	}
}

func TestMomentumZeroForChoreographyVelocities(t *testing.T) {
	// v3 = -2*v1 with equal masses gives exactly zero total momentum.
	tests := []struct{ vx, vy float64 }{
		{0.347111, 0.532728},
		{0.3, 0.4},
		{-0.25, 0.125},
		{0, 0},
	}

	for _, tt := range tests {
		tb := NewThreeBody([]float64{1, 1, 1})
		x := State{
			-1, 0, tt.vx, tt.vy,
			1, 0, tt.vx, tt.vy,
			0, 0, -2 * tt.vx, -2 * tt.vy,
		}
		px, py := tb.Momentum(x)
		if px != 0 || py != 0 {
			t.Errorf("vx=%g vy=%g: expected zero momentum, got (%g, %g)", tt.vx, tt.vy, px, py)
		}
	}
}

func TestMassesCopied(t *testing.T) {
	m := []float64{1, 1, 1}
	tb := NewThreeBody(m)

	m[0] = 5
	if tb.Masses()[0] != 1 {
		t.Error("ThreeBody aliases the caller's masses slice")
	}
}

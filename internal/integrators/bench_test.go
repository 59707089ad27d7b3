package integrators

import "testing"

func BenchmarkRK4ThreeBody(b *testing.B) {
	tb, x := figure8()
	integ := NewRK4()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(tb, x, 0, 1e-3)
	}
	_ = x
}

func BenchmarkEulerThreeBody(b *testing.B) {
	tb, x := figure8()
	integ := NewEuler()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(tb, x, 0, 1e-3)
	}
	_ = x
}

package analysis

import (
	"math"

	"github.com/diego4rmando/orbitlab/internal/orbit"
)

type DriftOptions struct {
	Dt      float64
	Horizon float64
}

func DefaultDriftOptions() DriftOptions {
	return DriftOptions{
		Dt:      1e-3,
		Horizon: 100.0,
	}
}

type DriftResult struct {
	InitialEnergy     float64
	MaxDriftPercent   float64
	FinalDriftPercent float64
}

// MeasureDrift integrates over the horizon and tracks the energy drift
// percent relative to the initial energy after every step. Drift is an
// integrator-accuracy diagnostic: the true dynamics conserve energy
// exactly.
func MeasureDrift(sys orbit.ConservativeSystem, integ orbit.Integrator, x0 orbit.State, opts DriftOptions) (DriftResult, error) {
	x := x0.Clone()

	res := DriftResult{InitialEnergy: sys.Energy(x)}

	t := 0.0
	step := 0
	for t < opts.Horizon {
		x = integ.Step(sys, x, t, opts.Dt)
		t += opts.Dt
		step++
		if !x.IsFinite() {
			return res, &orbit.StepError{Step: step, Time: t, Wrapped: orbit.ErrSingularity}
		}

		drift := driftPercent(res.InitialEnergy, sys.Energy(x))
		if drift > res.MaxDriftPercent {
			res.MaxDriftPercent = drift
		}
	}

	res.FinalDriftPercent = driftPercent(res.InitialEnergy, sys.Energy(x))
	return res, nil
}

func driftPercent(initial, current float64) float64 {
	if initial == 0 {
		return 0
	}
	return math.Abs((current-initial)/initial) * 100
}

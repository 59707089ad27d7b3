package analysis

import (
	"math"

	"github.com/diego4rmando/orbitlab/internal/orbit"
)

// transientSkip is the initial window integrated without checking return
// distance, so the detector does not trivially re-detect the start.
const transientSkip = 1.0

type PeriodOptions struct {
	Dt        float64 // integration step
	MaxTime   float64 // search horizon
	Threshold float64 // position-space distance counted as "returned"
}

func DefaultPeriodOptions() PeriodOptions {
	return PeriodOptions{
		Dt:        1e-4,
		MaxTime:   200.0,
		Threshold: 0.01,
	}
}

// PeriodResult is the outcome of a periodicity search. Found=false with a
// populated MinDistance is the normal "not periodic within search bounds"
// outcome, not a failure.
type PeriodResult struct {
	Period          float64
	Found           bool
	MinDistance     float64
	MinDistanceTime float64
	DriftPercent    float64
}

// FindPeriod integrates forward from x0 and reports the first time the
// trajectory returns within Threshold of its initial positions. The
// comparison uses positions only: a time-reversal-symmetric choreography
// returns to its starting positions with reversed velocities, and a
// full-state comparison would wrongly reject it. The minimum distance seen
// and its time are tracked as a diagnostic either way.
func FindPeriod(sys orbit.System, integ orbit.Integrator, x0 orbit.State, opts PeriodOptions) (PeriodResult, error) {
	initial := x0.Clone()
	x := x0.Clone()

	var initialEnergy float64
	ham, hasEnergy := sys.(orbit.Hamiltonian)
	if hasEnergy {
		initialEnergy = ham.Energy(x)
	}

	res := PeriodResult{MinDistance: math.Inf(1)}

	t := 0.0
	step := 0

	for t < transientSkip {
		x = integ.Step(sys, x, t, opts.Dt)
		t += opts.Dt
		step++
		if !x.IsFinite() {
			return res, &orbit.StepError{Step: step, Time: t, Wrapped: orbit.ErrSingularity}
		}
	}

	for t < opts.MaxTime {
		x = integ.Step(sys, x, t, opts.Dt)
		t += opts.Dt
		step++
		if !x.IsFinite() {
			return res, &orbit.StepError{Step: step, Time: t, Wrapped: orbit.ErrSingularity}
		}

		dist := x.PositionDistance(initial)
		if dist < res.MinDistance {
			res.MinDistance = dist
			res.MinDistanceTime = t
		}

		if dist < opts.Threshold {
			res.Period = t
			res.Found = true
			if hasEnergy {
				res.DriftPercent = driftPercent(initialEnergy, ham.Energy(x))
			}
			return res, nil
		}
	}

	if hasEnergy {
		res.DriftPercent = driftPercent(initialEnergy, ham.Energy(x))
	}
	return res, nil
}

package analysis

import (
	"math"

	"github.com/diego4rmando/orbitlab/internal/orbit"
)

type StabilityOptions struct {
	Dt           float64
	Horizon      float64
	Perturbation float64 // offset added to the x-position of body 1
}

func DefaultStabilityOptions() StabilityOptions {
	return StabilityOptions{
		Dt:           1e-3,
		Horizon:      100.0,
		Perturbation: 1e-8,
	}
}

// EstimateLyapunov integrates a nominal and a perturbed trajectory in
// lockstep and estimates the exponential divergence rate
//
//	λ ≈ ln(d_final / d_initial) / horizon
//
// where d is the Euclidean separation over the full state, positions and
// velocities jointly. Positive means exponential divergence (chaotic),
// near-zero or negative means linear stability over the sampled horizon.
//
// This is a finite-time, single-perturbation-direction approximation, not
// a Lyapunov spectrum: it is directionally informative, not a rigorous
// chaos certificate. If either separation is zero the estimate is 0.
func EstimateLyapunov(sys orbit.System, integ orbit.Integrator, x0 orbit.State, opts StabilityOptions) (float64, error) {
	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += opts.Perturbation

	initialSep := x.Distance(xp)
	if initialSep == 0 {
		return 0, nil
	}

	t := 0.0
	step := 0
	for t < opts.Horizon {
		x = integ.Step(sys, x, t, opts.Dt)
		xp = integ.Step(sys, xp, t, opts.Dt)
		t += opts.Dt
		step++
		if !x.IsFinite() || !xp.IsFinite() {
			return 0, &orbit.StepError{Step: step, Time: t, Wrapped: orbit.ErrSingularity}
		}
	}

	finalSep := x.Distance(xp)
	if finalSep == 0 {
		return 0, nil
	}

	return math.Log(finalSep/initialSep) / opts.Horizon, nil
}

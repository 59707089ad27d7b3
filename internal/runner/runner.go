// Package runner orchestrates the per-orbit analyses and assembles
// structured results. Classification bands are fixed policy: external
// consumers rely on the exact boundaries.
package runner

import (
	"context"
	"math"

	"github.com/diego4rmando/orbitlab/internal/analysis"
	"github.com/diego4rmando/orbitlab/internal/integrators"
	"github.com/diego4rmando/orbitlab/internal/orbit"
)

// Classification boundaries. Drift bands are percents, Lyapunov bands are
// the raw estimate.
const (
	DriftExcellentMax   = 0.01
	DriftGoodMax        = 0.1
	LyapunovStableMax   = 0.01
	LyapunovMarginalMax = 0.1
)

// Result is the analysis outcome for one orbit. Period is nil when no
// return was detected within the search horizon. Fault is set when the
// run terminated on a singularity; it is empty for a mere non-return.
type Result struct {
	Name                    string   `json:"name"`
	Key                     string   `json:"key"`
	Period                  *float64 `json:"period"`
	MinReturnDistance       float64  `json:"min_return_distance"`
	InitialEnergy           float64  `json:"initial_energy"`
	MaxEnergyDriftPercent   float64  `json:"max_energy_drift_percent"`
	FinalEnergyDriftPercent float64  `json:"final_energy_drift_percent"`
	LyapunovEstimate        float64  `json:"lyapunov_estimate"`
	Periodic                bool     `json:"periodic"`
	EnergyRating            string   `json:"energy_rating,omitempty"`
	StabilityRating         string   `json:"stability_rating,omitempty"`
	Fault                   string   `json:"fault,omitempty"`
}

type Options struct {
	Period    analysis.PeriodOptions
	Drift     analysis.DriftOptions
	Stability analysis.StabilityOptions
}

func DefaultOptions() Options {
	return Options{
		Period:    analysis.DefaultPeriodOptions(),
		Drift:     analysis.DefaultDriftOptions(),
		Stability: analysis.DefaultStabilityOptions(),
	}
}

// Runner runs the full analysis pipeline for one orbit at a time. It is
// not safe for concurrent use: the integrator keeps scratch buffers.
// Batch creates one Runner per worker.
type Runner struct {
	integ orbit.Integrator
	opts  Options
}

func New(opts Options) *Runner {
	return &Runner{integ: integrators.NewRK4(), opts: opts}
}

func NewWithIntegrator(integ orbit.Integrator, opts Options) *Runner {
	return &Runner{integ: integ, opts: opts}
}

// TestOrbit validates the configuration, then runs periodicity detection,
// energy-conservation measurement, and stability estimation, each over its
// own horizon and dt. Validation failures and mid-run singularities return
// an error; exhausting the periodicity horizon does not.
func (r *Runner) TestOrbit(ctx context.Context, key string, cfg orbit.Config) (Result, error) {
	res := Result{Name: cfg.Name, Key: key}

	if err := cfg.Validate(); err != nil {
		return res, err
	}

	body := orbit.NewThreeBody(cfg.Masses)
	x0 := cfg.InitialState()

	if err := ctx.Err(); err != nil {
		return res, err
	}
	pr, err := analysis.FindPeriod(body, r.integ, x0, r.opts.Period)
	if err != nil {
		return res, err
	}
	if pr.Found {
		p := pr.Period
		res.Period = &p
		res.Periodic = true
	}
	if !math.IsInf(pr.MinDistance, 1) {
		res.MinReturnDistance = pr.MinDistance
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	dr, err := analysis.MeasureDrift(body, r.integ, x0, r.opts.Drift)
	if err != nil {
		return res, err
	}
	res.InitialEnergy = dr.InitialEnergy
	res.MaxEnergyDriftPercent = dr.MaxDriftPercent
	res.FinalEnergyDriftPercent = dr.FinalDriftPercent
	res.EnergyRating = ClassifyDrift(dr.MaxDriftPercent)

	if err := ctx.Err(); err != nil {
		return res, err
	}
	lyap, err := analysis.EstimateLyapunov(body, r.integ, x0, r.opts.Stability)
	if err != nil {
		return res, err
	}
	res.LyapunovEstimate = lyap
	res.StabilityRating = ClassifyStability(lyap)

	return res, nil
}

// ClassifyDrift maps a max energy drift percent to a rating.
func ClassifyDrift(maxDriftPercent float64) string {
	switch {
	case maxDriftPercent < DriftExcellentMax:
		return "excellent"
	case maxDriftPercent < DriftGoodMax:
		return "good"
	default:
		return "warning"
	}
}

// ClassifyStability maps a Lyapunov estimate to a rating.
func ClassifyStability(estimate float64) string {
	switch {
	case estimate < LyapunovStableMax:
		return "stable"
	case estimate < LyapunovMarginalMax:
		return "marginal"
	default:
		return "unstable"
	}
}

package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/diego4rmando/orbitlab/internal/analysis"
	"github.com/diego4rmando/orbitlab/internal/catalog"
	"github.com/diego4rmando/orbitlab/internal/orbit"
)

func quickOptions() Options {
	// The stability horizon must be long: the figure-8's finite-time
	// estimate decays like ln(cT)/T and only reaches the stable band
	// near T=1000. The faulting tests below error out before stability
	// estimation, so they never pay for it.
	return Options{
		Period:    analysis.PeriodOptions{Dt: 1e-3, MaxTime: 10.0, Threshold: 0.01},
		Drift:     analysis.DriftOptions{Dt: 1e-3, Horizon: 20.0},
		Stability: analysis.StabilityOptions{Dt: 1e-3, Horizon: 1000.0, Perturbation: 1e-8},
	}
}

func TestClassifyDrift(t *testing.T) {
	tests := []struct {
		drift    float64
		expected string
	}{
		{0.0, "excellent"},
		{0.009999, "excellent"},
		{0.01, "good"},
		{0.05, "good"},
		{0.1, "warning"},
		{3.0, "warning"},
	}

	for _, tt := range tests {
		if got := ClassifyDrift(tt.drift); got != tt.expected {
			t.Errorf("ClassifyDrift(%g) = %s, expected %s", tt.drift, got, tt.expected)
		}
	}
}

func TestClassifyStability(t *testing.T) {
	tests := []struct {
		lyap     float64
		expected string
	}{
		{-0.5, "stable"},
		{0.0, "stable"},
		{0.009999, "stable"},
		{0.01, "marginal"},
		{0.05, "marginal"},
		{0.1, "unstable"},
		{1.0, "unstable"},
	}

	for _, tt := range tests {
		if got := ClassifyStability(tt.lyap); got != tt.expected {
			t.Errorf("ClassifyStability(%g) = %s, expected %s", tt.lyap, got, tt.expected)
		}
	}
}

func TestTestOrbitFigure8(t *testing.T) {
	if testing.Short() {
		t.Skip("long stability horizon")
	}

	cfg := catalog.Builtin()["figure8"]

	res, err := New(quickOptions()).TestOrbit(context.Background(), "figure8", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Periodic || res.Period == nil {
		t.Fatal("figure-8 should be periodic")
	}
	if res.MaxEnergyDriftPercent >= 0.1 {
		t.Errorf("drift too large: %g%%", res.MaxEnergyDriftPercent)
	}
	if res.LyapunovEstimate >= LyapunovStableMax {
		t.Errorf("figure-8 should classify as stable, got %g", res.LyapunovEstimate)
	}
	if res.StabilityRating != "stable" {
		t.Errorf("expected stable rating, got %s", res.StabilityRating)
	}
	if res.InitialEnergy >= 0 {
		t.Errorf("bound orbit should have negative energy, got %g", res.InitialEnergy)
	}
	if res.Fault != "" {
		t.Errorf("unexpected fault: %s", res.Fault)
	}
}

func TestTestOrbitInvalidConfig(t *testing.T) {
	cfg := orbit.Config{
		Name:       "Broken",
		Masses:     []float64{1, -1, 1},
		Positions:  [][]float64{{-1, 0}, {1, 0}, {0, 0}},
		Velocities: [][]float64{{0, 0}, {0, 0}, {0, 0}},
	}

	_, err := New(quickOptions()).TestOrbit(context.Background(), "broken", cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, orbit.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestTestOrbitSingularity(t *testing.T) {
	cfg := orbit.Config{
		Name:       "Coincident",
		Masses:     []float64{1, 1, 1},
		Positions:  [][]float64{{0, 0}, {0, 0}, {1, 0}},
		Velocities: [][]float64{{0, 0}, {0, 0}, {0, 0}},
	}

	_, err := New(quickOptions()).TestOrbit(context.Background(), "coincident", cfg)
	if err == nil {
		t.Fatal("expected singularity error")
	}
	if !errors.Is(err, orbit.ErrSingularity) {
		t.Errorf("expected ErrSingularity, got %v", err)
	}
}

func TestTestOrbitCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(quickOptions()).TestOrbit(ctx, "figure8", catalog.Builtin()["figure8"])
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

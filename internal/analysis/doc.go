// Package analysis implements the orbit diagnostics: periodicity
// detection, energy-drift measurement, and a finite-time Lyapunov
// estimate. Every routine integrates forward with a caller-supplied
// fixed-step integrator, checks state finiteness after each step, and
// surfaces a non-finite state as [orbit.ErrSingularity] wrapped with
// step context. All horizons are hard upper bounds, so every routine
// terminates even on divergent trajectories.
package analysis

// Package orbit provides the core types for three-body orbit analysis.
//
// The package defines the state representation and the gravitational
// model used by the integration and analysis layers:
//
//   - [State]: flat 12-element vector [x1,y1,vx1,vy1, ..., x3,y3,vx3,vy3]
//   - [Config]: a named three-body initial configuration
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [ThreeBody]: Newtonian point-mass gravity with G = 1
//
// # Example
//
//	cfg := catalog.Builtin()["figure8"]
//	body := orbit.NewThreeBody(cfg.Masses)
//	x0 := cfg.InitialState()
//	x1 := integrators.NewRK4().Step(body, x0, 0, 1e-3)
//
// # Singularities
//
// The force law carries no softening term. If two bodies coincide the
// derivative divides by zero and the state turns non-finite; callers
// must check [State.IsFinite] after each step and abort the run.
package orbit

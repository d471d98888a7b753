// Package sim drives the closed control loop.
//
// The package defines the loop's collaborators and the driver that wires
// them together:
//
//   - [Controller]: turns tracking error into a work command
//   - [Plant]: consumes the command and produces the new output
//   - [SetPoint]: pure reference signal r(t)
//   - [Simulator]: runs the loop for a fixed number of steps
//
// Each step t computes r = sp.At(t), e = r - y, u = ctrl.Work(e),
// y = plant.Work(u) and records Sample{t, r, e, u, y}. The output y starts
// at zero.
//
// # Example
//
//	s := sim.New(control.NewPI(1.25, 0.01), buffer, setpoint.Canonical)
//	result, _ := s.Run(sim.Config{Steps: 310})
//
// # Thread Safety
//
// A Simulator and the components it drives are NOT thread-safe and are
// mutated on every step. Run independent loops with independent components.
package sim

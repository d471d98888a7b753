// Package control provides the loop's feedback law.
//
// [PI] implements the sim.Controller interface: each step it receives the
// integer tracking error e = r - y and returns a real-valued work command
//
//	u = Kp*e + Ki*Σe
//
// # Usage
//
//	pi := control.NewPI(1.25, 0.01)
//	s := sim.New(pi, buffer, setpoint.Canonical)
//	// PI.Work is called once per step
//
// Gains are fixed at construction. The integral is an exact integer sum and
// has no anti-windup.
package control

// Package tui provides a terminal live view of the control loop.
//
// The view steps the loop on a timer using the Bubble Tea framework and shows
// the set-point and queue level as a rolling chart beside the controller and
// buffer state.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	+/-   - Double or halve the steps taken per frame
//	R     - Restart with a fresh loop
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package tui

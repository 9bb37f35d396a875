// Package viz renders the pendulum in a terminal using Bubble Tea.
//
//   - [Model]: drives a Simulation from frame ticks and draws it
//   - [Canvas]: Braille-based pixel canvas
//   - [Drawer]: chipmunk debug draw onto a Canvas
//
// # Key Bindings
//
//	←/H   - Push left
//	→/L   - Push right
//	R     - Reset to initial state
//	T     - Cycle color themes
//	Q     - Quit
//
// Terminals deliver key presses and repeats but no releases, so each press
// holds its direction for a short fixed time.
package viz

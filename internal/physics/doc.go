// Package physics models the pinned pendulum on top of the chipmunk engine.
//
// The package owns the bodies and the constraint; integration and
// constraint solving are done by the [cp.Space] they are registered with:
//
//   - [Pendulum]: static anchor, dynamic bob and the pin joint between them
//   - [AngleBetween], [Rotated]: the vector trigonometry used for input
//
// # Conventions
//
// Coordinates are y-up. The resting direction is (0, -1); angles are in
// degrees and positive counter-clockwise from rest.
package physics

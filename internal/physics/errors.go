package physics

import "errors"

var (
	// ErrNilWorld indicates the pendulum was given no space to live in.
	ErrNilWorld = errors.New("physics: nil space")

	// ErrZeroDirection indicates an impulse direction with no orientation.
	ErrZeroDirection = errors.New("physics: zero impulse direction")

	// ErrParameterBounds indicates a body parameter outside its valid range.
	ErrParameterBounds = errors.New("physics: parameter out of valid bounds")
)

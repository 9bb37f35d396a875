package sim

import (
	"github.com/jakecoffman/cp"
)

// World owns the chipmunk space and always advances it by one fixed
// interval.
type World struct {
	space    *cp.Space
	interval float64
	steps    int
}

func NewWorld(gravity cp.Vector, interval float64, iterations int) (*World, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	space := cp.NewSpace()
	space.SetGravity(gravity)
	if iterations > 0 {
		space.Iterations = uint(iterations)
	}
	return &World{space: space, interval: interval}, nil
}

func (w *World) Space() *cp.Space  { return w.space }
func (w *World) Interval() float64 { return w.interval }
func (w *World) Steps() int        { return w.steps }

// Time is the simulated time, steps times the interval.
func (w *World) Time() float64 {
	return float64(w.steps) * w.interval
}

func (w *World) Step() {
	w.space.Step(w.interval)
	w.steps++
}

// Render hands every body, shape and constraint to the drawer.
func (w *World) Render(d cp.Drawer) {
	cp.DrawSpace(w.space, d)
}

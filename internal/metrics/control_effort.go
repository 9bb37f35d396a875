package metrics

import (
	"math"

	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/input"
	"github.com/san-kum/pendulum/internal/sim"
)

// ControlEffort sums the impulse delivered by pushes.
type ControlEffort struct {
	name   string
	force  float64
	pushes int
}

func NewControlEffort(force float64) *ControlEffort {
	return &ControlEffort{
		name:  "control_effort",
		force: force,
	}
}

func (c *ControlEffort) Name() string {
	return c.name
}

func (c *ControlEffort) OnStep(s sim.Snapshot) {
	if s.Push != input.PushNone {
		c.pushes++
	}
}

func (c *ControlEffort) Value() float64 {
	return float64(c.pushes) * c.force
}

func (c *ControlEffort) Pushes() int { return c.pushes }

func (c *ControlEffort) Reset() {
	c.pushes = 0
}

// Default returns the metric set reported for a run.
func Default(cfg *config.Config) []sim.Metric {
	g := cfg.Physics.Gravity
	length := cfg.RodLength()
	// energy needed to lift the bob by one rod length
	reference := cfg.Pendulum.Mass * length * math.Hypot(g.X, g.Y)

	return []sim.Metric{
		NewEnergy(),
		NewEnergyDrift(reference),
		NewRodDrift(length),
		NewPeakAngle(),
		NewStability(5),
		NewControlEffort(cfg.Pendulum.Force),
	}
}

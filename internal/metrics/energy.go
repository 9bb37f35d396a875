package metrics

import (
	"math"

	"github.com/san-kum/pendulum/internal/input"
	"github.com/san-kum/pendulum/internal/sim"
)

// EnergyDrift tracks the largest change in total energy between pushes,
// relative to reference. A push adds energy on purpose, so the baseline is
// taken again on every pushed step.
type EnergyDrift struct {
	name      string
	reference float64
	baseline  float64
	maxDrift  float64
	samples   int
}

func NewEnergyDrift(reference float64) *EnergyDrift {
	return &EnergyDrift{
		name:      "energy_drift",
		reference: reference,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) OnStep(s sim.Snapshot) {
	if e.samples == 0 || s.Push != input.PushNone {
		e.baseline = s.Energy
		e.samples++
		return
	}
	e.samples++

	if e.reference != 0 {
		drift := math.Abs(s.Energy-e.baseline) / math.Abs(e.reference)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.baseline = 0
	e.maxDrift = 0
	e.samples = 0
}

// Energy is the mean total energy over the observed steps.
type Energy struct {
	name    string
	total   float64
	samples int
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) OnStep(s sim.Snapshot) {
	e.total += s.Energy
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}

package metrics

import (
	"math"

	"github.com/san-kum/pendulum/internal/sim"
)

// Stability is the fraction of steps with the swing inside threshold
// degrees of rest.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) OnStep(snap sim.Snapshot) {
	s.samples++
	if math.Abs(snap.Angle) > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

// PeakAngle is the largest swing seen, in degrees.
type PeakAngle struct {
	peak float64
}

func NewPeakAngle() *PeakAngle { return &PeakAngle{} }

func (p *PeakAngle) Name() string { return "peak_angle" }

func (p *PeakAngle) OnStep(snap sim.Snapshot) {
	p.peak = math.Max(p.peak, math.Abs(snap.Angle))
}

func (p *PeakAngle) Value() float64 { return p.peak }
func (p *PeakAngle) Reset()         { p.peak = 0 }

// RodDrift is the largest relative deviation of the measured anchor to bob
// distance from the rod length. The pin joint should keep it near zero.
type RodDrift struct {
	length   float64
	maxDrift float64
}

func NewRodDrift(length float64) *RodDrift {
	return &RodDrift{length: length}
}

func (r *RodDrift) Name() string { return "rod_drift" }

func (r *RodDrift) OnStep(snap sim.Snapshot) {
	if r.length == 0 {
		return
	}
	r.maxDrift = math.Max(r.maxDrift, math.Abs(snap.Length-r.length)/r.length)
}

func (r *RodDrift) Value() float64 { return r.maxDrift }
func (r *RodDrift) Reset()         { r.maxDrift = 0 }

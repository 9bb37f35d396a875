package sim

import (
	"github.com/jakecoffman/cp"
	"github.com/san-kum/pendulum/internal/input"
)

// Snapshot is the pendulum state observed after a tick.
type Snapshot struct {
	Step     int
	Time     float64
	Angle    float64
	Position cp.Vector
	Velocity cp.Vector
	Energy   float64
	Length   float64 // measured anchor to bob distance
	Push     input.Push
}

type Observer interface {
	OnStep(s Snapshot)
}

type Metric interface {
	Observer
	Name() string
	Value() float64
	Reset()
}

// Trace is the outcome of a headless run.
type Trace struct {
	Snapshots []Snapshot
	Metrics   map[string]float64
}

func (t *Trace) Times() []float64 {
	out := make([]float64, len(t.Snapshots))
	for i, s := range t.Snapshots {
		out[i] = s.Time
	}
	return out
}

func (t *Trace) Angles() []float64 {
	out := make([]float64, len(t.Snapshots))
	for i, s := range t.Snapshots {
		out[i] = s.Angle
	}
	return out
}

func (t *Trace) Final() Snapshot {
	if len(t.Snapshots) == 0 {
		return Snapshot{}
	}
	return t.Snapshots[len(t.Snapshots)-1]
}

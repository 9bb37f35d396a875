package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/input"
	"github.com/san-kum/pendulum/internal/physics"
)

// Simulation ties the world, the pendulum and an input poller together and
// runs the fixed-step update.
type Simulation struct {
	cfg       *config.Config
	world     *World
	model     *physics.Pendulum
	poller    input.Poller
	label     string
	lastPush  input.Push
	metrics   []Metric
	observers []Observer
}

func New(cfg *config.Config, poller input.Poller) (*Simulation, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:       cfg,
		poller:    poller,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulation) build() error {
	world, err := NewWorld(vec(s.cfg.Physics.Gravity), s.cfg.Interval(), s.cfg.Physics.Iterations)
	if err != nil {
		return err
	}
	model, err := physics.NewPendulum(world.Space(), physics.Params{
		Anchor: vec(s.cfg.Pendulum.Anchor),
		Bob:    vec(s.cfg.Pendulum.Bob),
		Mass:   s.cfg.Pendulum.Mass,
		Radius: s.cfg.Pendulum.Radius,
		Force:  s.cfg.Pendulum.Force,
	})
	if err != nil {
		return err
	}
	s.world, s.model = world, model
	s.lastPush = input.PushNone
	s.label = FormatLabel(model.Angle())
	return nil
}

func (s *Simulation) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulation) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulation) SetPoller(p input.Poller) { s.poller = p }

func (s *Simulation) Config() *config.Config   { return s.cfg }
func (s *Simulation) World() *World            { return s.world }
func (s *Simulation) Model() *physics.Pendulum { return s.model }
func (s *Simulation) Label() string            { return s.label }
func (s *Simulation) Interval() float64        { return s.world.Interval() }

// Reset rebuilds the world from the configuration. Metrics are reset too;
// observers and the poller are kept.
func (s *Simulation) Reset() error {
	for _, m := range s.metrics {
		m.Reset()
	}
	return s.build()
}

// Update runs one fixed tick: input, impulse, physics step, label. dt is
// the wall time since the previous tick and does not affect the step.
func (s *Simulation) Update(dt float64) error {
	push := input.Resolve(s.poller)
	if push != input.PushNone {
		dir := physics.Rotated(s.model.Vector(), push.Rotation())
		if err := s.model.Accelerate(dir); err != nil {
			return &SimulationError{Step: s.world.Steps(), Time: s.world.Time(), Wrapped: err}
		}
	}
	s.lastPush = push

	s.world.Step()
	if t, ok := s.poller.(input.Ticker); ok {
		t.Tick()
	}

	snap := s.Snapshot()
	if !finite(snap.Position) || !finite(snap.Velocity) {
		return &SimulationError{Step: snap.Step, Time: snap.Time, Wrapped: ErrUnstable}
	}

	s.label = FormatLabel(snap.Angle)

	for _, m := range s.metrics {
		m.OnStep(snap)
	}
	for _, obs := range s.observers {
		obs.OnStep(snap)
	}
	return nil
}

func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Step:     s.world.Steps(),
		Time:     s.world.Time(),
		Angle:    s.model.Angle(),
		Position: s.model.Bob.Position(),
		Velocity: s.model.Bob.Velocity(),
		Energy:   s.model.Energy(),
		Length:   s.model.Vector().Length(),
		Push:     s.lastPush,
	}
}

// MaxRunSteps bounds the number of ticks a single Run may record.
const MaxRunSteps = math.MaxInt32

// Run ticks for duration seconds of simulated time and records every
// snapshot, the initial one included.
func (s *Simulation) Run(ctx context.Context, duration float64) (*Trace, error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return nil, fmt.Errorf("%w: duration %g", ErrInvalidInterval, duration)
	}
	count := math.Round(duration / s.Interval())
	if count > MaxRunSteps {
		return nil, fmt.Errorf("%w: duration %g needs more than %d steps", ErrInvalidInterval, duration, MaxRunSteps)
	}

	steps := int(count)
	trace := &Trace{
		Snapshots: make([]Snapshot, 0, steps+1),
		Metrics:   make(map[string]float64),
	}
	trace.Snapshots = append(trace.Snapshots, s.Snapshot())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			s.collect(trace)
			return trace, ctx.Err()
		default:
		}

		if err := s.Update(s.Interval()); err != nil {
			s.collect(trace)
			return trace, err
		}
		trace.Snapshots = append(trace.Snapshots, s.Snapshot())
	}

	s.collect(trace)
	return trace, nil
}

func (s *Simulation) collect(trace *Trace) {
	for _, m := range s.metrics {
		trace.Metrics[m.Name()] = m.Value()
	}
}

// FormatLabel renders the angle the way the on-screen label shows it.
func FormatLabel(angle float64) string {
	return fmt.Sprintf("Angle: %4.0f°", angle)
}

func vec(v config.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func finite(v cp.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

package sim

import (
	"context"
	"errors"
	"math"

	"github.com/jakecoffman/cp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/input"
)

type countingMetric struct {
	steps  int
	pushes int
}

func (c *countingMetric) Name() string { return "count" }
func (c *countingMetric) Value() float64 {
	return float64(c.steps)
}
func (c *countingMetric) Reset() { c.steps, c.pushes = 0, 0 }
func (c *countingMetric) OnStep(s Snapshot) {
	c.steps++
	if s.Push != input.PushNone {
		c.pushes++
	}
}

func mustNew(cfg *config.Config, p input.Poller) *Simulation {
	s, err := New(cfg, p)
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Simulation", func() {
	Describe("construction", func() {
		It("starts at rest with a zero label", func() {
			s := mustNew(nil, nil)
			Expect(s.Model().Angle()).To(BeNumerically("~", 0, 1e-9))
			Expect(s.Label()).To(Equal("Angle:    0°"))
			Expect(s.Model().Length()).To(BeNumerically("~", 310, 1e-9))
		})

		It("rejects an invalid configuration", func() {
			cfg := config.DefaultConfig()
			cfg.Pendulum.Mass = -1
			_, err := New(cfg, nil)
			Expect(errors.Is(err, config.ErrParameterBounds)).To(BeTrue())
		})
	})

	Describe("Update", func() {
		It("advances by the fixed interval regardless of dt", func() {
			s := mustNew(nil, nil)
			Expect(s.Update(3.7)).To(Succeed())
			Expect(s.World().Steps()).To(Equal(1))
			Expect(s.World().Time()).To(BeNumerically("~", 0.01, 1e-12))
		})

		It("keeps a resting pendulum at rest and the rod rigid", func() {
			s := mustNew(nil, nil)
			Expect(s.Update(0.01)).To(Succeed())

			snap := s.Snapshot()
			Expect(snap.Angle).To(BeNumerically("~", 0, 1e-6))
			Expect(snap.Length).To(BeNumerically("~", 310, 1e-3))
		})

		It("moves a displaced bob tangentially", func() {
			s := mustNew(config.GetPreset("swinging"), nil)
			start := s.Model().Bob.Position()
			radial := s.Model().Vector().Normalize()

			for i := 0; i < 3; i++ {
				Expect(s.Update(0.01)).To(Succeed())
			}

			moved := s.Model().Bob.Position().Sub(start)
			Expect(moved.Length()).To(BeNumerically(">", 0))
			Expect(math.Abs(moved.Dot(radial)) / moved.Length()).To(BeNumerically("<", 0.05))
			Expect(s.Snapshot().Length).To(BeNumerically("~", 310, 0.05))
			Expect(s.Model().Angle()).To(BeNumerically("<", 30))
		})

		DescribeTable("pushes perpendicular to the rod",
			func(held input.Held, wantX float64) {
				s := mustNew(nil, held)
				Expect(s.Update(0.01)).To(Succeed())

				v := s.Model().Bob.Velocity()
				Expect(v.X).To(BeNumerically("~", wantX, 1))
				Expect(v.Y).To(BeNumerically("~", 0, 1))
				Expect(math.Abs(v.Dot(s.Model().Vector().Normalize()))).To(BeNumerically("<", 1e-3))
			},
			Entry("left swings clockwise", input.Held{input.Left: true}, -100.0),
			Entry("right swings counter-clockwise", input.Held{input.Right: true}, 100.0),
			Entry("left wins when both are held", input.Held{input.Left: true, input.Right: true}, -100.0),
		)

		It("reports the push in the snapshot and ticks latches", func() {
			latch := input.NewLatch(2)
			latch.Press(input.Right)
			s := mustNew(nil, latch)

			Expect(s.Update(0.01)).To(Succeed())
			Expect(s.Snapshot().Push).To(Equal(input.PushRight))
			Expect(s.Update(0.01)).To(Succeed())
			Expect(s.Update(0.01)).To(Succeed())
			Expect(s.Snapshot().Push).To(Equal(input.PushNone))
		})

		It("refreshes the label from the current angle", func() {
			s := mustNew(nil, input.Held{input.Right: true})
			for i := 0; i < 10; i++ {
				Expect(s.Update(0.01)).To(Succeed())
			}
			Expect(s.Model().Angle()).To(BeNumerically(">", 1))
			Expect(s.Label()).To(Equal(FormatLabel(s.Model().Angle())))
		})

		It("reports divergence as ErrUnstable", func() {
			cfg := config.DefaultConfig()
			cfg.Pendulum.Force = 1e308
			s := mustNew(cfg, input.Held{input.Right: true})

			err := s.Update(0.01)
			Expect(err).To(MatchError(ErrUnstable))

			var simErr *SimulationError
			Expect(errors.As(err, &simErr)).To(BeTrue())
			Expect(simErr.Step).To(Equal(1))
		})

		It("notifies metrics and observers every tick", func() {
			s := mustNew(nil, input.Held{input.Left: true})
			m, o := &countingMetric{}, &countingMetric{}
			s.AddMetric(m)
			s.AddObserver(o)

			for i := 0; i < 5; i++ {
				Expect(s.Update(0.01)).To(Succeed())
			}
			Expect(m.steps).To(Equal(5))
			Expect(o.pushes).To(Equal(5))
		})
	})

	Describe("fixed-step determinism", func() {
		It("produces identical trajectories for any dt sequence", func() {
			la, lb := input.NewLatch(1), input.NewLatch(1)
			la.PressFor(input.Right, 20)
			lb.PressFor(input.Right, 20)
			a, b := mustNew(nil, la), mustNew(nil, lb)

			dts := []float64{0.01, 0, 0.5, 0.0031, 1e-9, 0.02}
			for i := 0; i < 300; i++ {
				Expect(a.Update(0.01)).To(Succeed())
				Expect(b.Update(dts[i%len(dts)])).To(Succeed())
				Expect(b.Model().Bob.Position()).To(Equal(a.Model().Bob.Position()))
			}
		})
	})

	Describe("Reset", func() {
		It("rebuilds the pendulum at its configured pose", func() {
			s := mustNew(nil, input.Held{input.Right: true})
			m := &countingMetric{}
			s.AddMetric(m)
			for i := 0; i < 20; i++ {
				Expect(s.Update(0.01)).To(Succeed())
			}

			Expect(s.Reset()).To(Succeed())
			Expect(s.World().Steps()).To(Equal(0))
			pos := s.Model().Bob.Position()
			Expect(pos.X).To(BeNumerically("~", 360, 1e-9))
			Expect(pos.Y).To(BeNumerically("~", 50, 1e-9))
			Expect(s.Model().Bob.Velocity()).To(Equal(cp.Vector{}))
			Expect(m.steps).To(Equal(0))
		})
	})

	Describe("Run", func() {
		It("records one snapshot per tick plus the initial state", func() {
			s := mustNew(nil, nil)
			s.AddMetric(&countingMetric{})

			trace, err := s.Run(context.Background(), 1.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(trace.Snapshots).To(HaveLen(101))
			Expect(trace.Final().Time).To(BeNumerically("~", 1.0, 1e-9))
			Expect(trace.Metrics).To(HaveKeyWithValue("count", 100.0))
			Expect(trace.Angles()).To(HaveLen(101))
		})

		It("stops when the context is canceled", func() {
			s := mustNew(nil, nil)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			trace, err := s.Run(ctx, 1.0)
			Expect(err).To(MatchError(context.Canceled))
			Expect(trace.Snapshots).To(HaveLen(1))
		})

		DescribeTable("rejects a duration it cannot run",
			func(d float64) {
				s := mustNew(nil, nil)
				trace, err := s.Run(context.Background(), d)
				Expect(err).To(MatchError(ErrInvalidInterval))
				Expect(trace).To(BeNil())
				Expect(s.World().Steps()).To(Equal(0))
			},
			Entry("zero", 0.0),
			Entry("negative", -1.0),
			Entry("positive infinity", math.Inf(1)),
			Entry("negative infinity", math.Inf(-1)),
			Entry("NaN", math.NaN()),
			Entry("too many steps", 1e300),
		)
	})
})

var _ = Describe("FormatLabel", func() {
	DescribeTable("uses a four wide integer field",
		func(angle float64, want string) {
			Expect(FormatLabel(angle)).To(Equal(want))
		},
		Entry("zero", 0.0, "Angle:    0°"),
		Entry("positive", 12.4, "Angle:   12°"),
		Entry("negative", -45.6, "Angle:  -46°"),
		Entry("wide", 179.9, "Angle:  180°"),
	)
})

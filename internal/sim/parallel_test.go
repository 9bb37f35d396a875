package sim

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendulum/internal/config"
)

var _ = Describe("Ensemble", func() {
	It("runs every configuration and keeps their order", func() {
		cfgs := []*config.Config{
			config.GetPreset("swinging"),
			config.GetPreset("default"),
			config.GetPreset("fast"),
		}
		traces, err := NewEnsemble(cfgs...).
			WithMetrics(func(cfg *config.Config) []Metric { return []Metric{&countingMetric{}} }).
			Run(context.Background(), 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(traces).To(HaveLen(3))

		Expect(traces[0].Final().Angle).NotTo(BeNumerically("~", 30, 1))
		Expect(traces[1].Final().Angle).To(BeNumerically("~", 0, 1e-6))
		Expect(traces[0].Metrics["count"]).To(BeNumerically("==", 50))
		Expect(traces[2].Metrics["count"]).To(BeNumerically("==", 120))
	})

	It("matches a sequential run of the same configuration", func() {
		traces, err := NewEnsemble(config.GetPreset("swinging"), config.GetPreset("swinging")).
			Run(context.Background(), 1)
		Expect(err).NotTo(HaveOccurred())

		seq, err := mustNew(config.GetPreset("swinging"), nil).Run(context.Background(), 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(traces[0].Angles()).To(Equal(seq.Angles()))
		Expect(traces[1].Angles()).To(Equal(seq.Angles()))
	})

	It("returns an error for an unbounded duration", func() {
		traces, err := NewEnsemble(config.DefaultConfig(), config.GetPreset("swinging")).Run(context.Background(), math.Inf(1))
		Expect(err).To(MatchError(ErrInvalidInterval))
		Expect(traces).To(HaveLen(2))
		Expect(traces[0]).To(BeNil())
	})

	It("reports an invalid configuration", func() {
		bad := config.DefaultConfig()
		bad.Physics.Rate = -1
		traces, err := NewEnsemble(config.DefaultConfig(), bad).Run(context.Background(), 0.1)
		Expect(errors.Is(err, config.ErrParameterBounds)).To(BeTrue())
		Expect(traces[0]).NotTo(BeNil())
		Expect(traces[1]).To(BeNil())
	})
})

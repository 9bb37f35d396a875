package sim

import (
	"context"
	"sync"

	"github.com/san-kum/pendulum/internal/config"
)

// Ensemble runs independent headless simulations concurrently, one
// goroutine and one chipmunk space per configuration.
type Ensemble struct {
	configs []*config.Config
	metrics func(cfg *config.Config) []Metric
}

func NewEnsemble(configs ...*config.Config) *Ensemble {
	return &Ensemble{configs: configs}
}

// WithMetrics sets a factory for the metrics attached to each run. Metrics
// hold state, so every run gets fresh ones.
func (e *Ensemble) WithMetrics(f func(cfg *config.Config) []Metric) *Ensemble {
	e.metrics = f
	return e
}

// Run simulates every configuration for duration seconds without input.
// Traces come back in configuration order; the first error found in that
// order is returned with them.
func (e *Ensemble) Run(ctx context.Context, duration float64) ([]*Trace, error) {
	traces := make([]*Trace, len(e.configs))
	errs := make([]error, len(e.configs))

	var wg sync.WaitGroup
	for i, cfg := range e.configs {
		wg.Add(1)
		go func(idx int, cfg *config.Config) {
			defer wg.Done()

			s, err := New(cfg, nil)
			if err != nil {
				errs[idx] = err
				return
			}
			if e.metrics != nil {
				for _, m := range e.metrics(s.Config()) {
					s.AddMetric(m)
				}
			}
			traces[idx], errs[idx] = s.Run(ctx, duration)
		}(i, cfg)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return traces, err
		}
	}
	return traces, nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pendulum/internal/analysis"
	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/gui"
	"github.com/san-kum/pendulum/internal/input"
	"github.com/san-kum/pendulum/internal/metrics"
	"github.com/san-kum/pendulum/internal/sim"
	"github.com/san-kum/pendulum/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	preset     string
	duration   float64
	hold       string
	holdFor    float64
	showPhase  bool
	theme      string
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pendulum",
		Short: "interactive fixed pendulum",
		Long:  "Opens a window with a pendulum pinned to a fixed point. Hold the left or right arrow key to push the bob.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the pendulum in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return viz.Run(cfg, theme)
		},
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "minimal", fmt.Sprintf("color theme %v", viz.ThemeNames()))

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report swing metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated duration in seconds")
	runCmd.Flags().StringVar(&hold, "hold", "", "key held from the start (left or right)")
	runCmd.Flags().Float64Var(&holdFor, "hold-for", 0.3, "seconds the key is held")
	runCmd.Flags().BoolVar(&showPhase, "phase", false, "print the phase portrait")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tGRAVITY\tLENGTH\tMASS\tRATE")
			for _, name := range config.ListPresets() {
				c := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%.3f\t%.0f\n",
					name, c.Physics.Gravity.Y, c.RodLength(), c.Pendulum.Mass, c.Physics.Rate)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outFile != "" {
				if err := config.Save(outFile, cfg); err != nil {
					return err
				}
				fmt.Printf("config written to %s\n", outFile)
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}
	configCmd.Flags().StringVarP(&outFile, "out", "o", "", "write to file instead of stdout")

	compareCmd := &cobra.Command{
		Use:   "compare [preset...]",
		Short: "swing presets side by side (all when none given)",
		RunE:  comparePresets,
	}
	compareCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated duration in seconds")

	rootCmd.AddCommand(tuiCmd, runCmd, presetsCmd, configCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves --preset and --config. A config file wins over a
// preset; with neither the defaults are used.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var poller input.Poller
	if hold != "" {
		key, ok := input.ParseKey(hold)
		if !ok {
			return fmt.Errorf("unknown key: %s (use left or right)", hold)
		}
		ticks := int(math.Round(holdFor * cfg.Physics.Rate))
		if ticks < 1 {
			return fmt.Errorf("hold-for %g is shorter than one update", holdFor)
		}
		latch := input.NewLatch(ticks)
		latch.Press(key)
		poller = latch
	}

	s, err := sim.New(cfg, poller)
	if err != nil {
		return err
	}
	for _, m := range metrics.Default(cfg) {
		s.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running pendulum for %.2fs at %.0f Hz...\n", duration, cfg.Physics.Rate)
	start := time.Now()
	trace, runErr := s.Run(ctx, duration)
	if trace == nil {
		return runErr
	}
	fmt.Printf("%d steps in %v\n\n", len(trace.Snapshots)-1, time.Since(start).Round(time.Microsecond))

	if err := printSummary(os.Stdout, cfg, trace); err != nil {
		return err
	}

	angles := trace.Angles()
	if len(angles) > 1 {
		graph := asciigraph.Plot(angles,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("angle (deg) over time"),
		)
		fmt.Printf("\n%s\n", graph)
	}

	if showPhase {
		portrait := analysis.NewPhasePortrait(trace.Times(), angles)
		fmt.Printf("\nphase portrait (angle vs rate)\n%s", portrait.ASCII(60, 20))
	}

	return runErr
}

// formatPeriod renders a measured period, or "-" when none was found.
func formatPeriod(p float64) string {
	if p <= 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return "-"
	}
	return fmt.Sprintf("%.4fs", p)
}

func printSummary(out io.Writer, cfg *config.Config, trace *sim.Trace) error {
	final := trace.Final()
	g := math.Hypot(cfg.Physics.Gravity.X, cfg.Physics.Gravity.Y)
	times, angles := trace.Times(), trace.Angles()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "final\t%s\n", sim.FormatLabel(final.Angle))
	fmt.Fprintf(w, "time\t%.2fs\n", final.Time)
	fmt.Fprintf(w, "amplitude\t%.2f°\n", analysis.Amplitude(angles))

	names := make([]string, 0, len(trace.Metrics))
	for name := range trace.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6f\n", name, trace.Metrics[name])
	}

	fmt.Fprintf(w, "period (small angle)\t%s\n", formatPeriod(analysis.SmallAnglePeriod(cfg.RodLength(), g)))
	fmt.Fprintf(w, "period (zero crossings)\t%s\n", formatPeriod(analysis.ZeroCrossingPeriod(times, angles)))
	fft := 0.0
	if f := analysis.DominantFrequency(angles, cfg.Interval()); f > 0 {
		fft = 1 / f
	}
	fmt.Fprintf(w, "period (fft)\t%s\n", formatPeriod(fft))
	return w.Flush()
}

func comparePresets(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = config.ListPresets()
	}
	cfgs := make([]*config.Config, len(names))
	for i, name := range names {
		if cfgs[i] = config.GetPreset(name); cfgs[i] == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	traces, err := sim.NewEnsemble(cfgs...).WithMetrics(metrics.Default).Run(ctx, duration)
	if err != nil {
		return err
	}

	return printComparison(os.Stdout, names, cfgs, traces)
}

// printComparison writes one row per preset. Presets that never cross
// the rest position have no measured period and print "-".
func printComparison(out io.Writer, names []string, cfgs []*config.Config, traces []*sim.Trace) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPEAK\tENERGY DRIFT\tROD DRIFT\tPERIOD\tTHEORY")
	for i, tr := range traces {
		c := cfgs[i]
		g := math.Hypot(c.Physics.Gravity.X, c.Physics.Gravity.Y)
		fmt.Fprintf(w, "%s\t%.2f°\t%.6f\t%.6f\t%s\t%s\n",
			names[i],
			tr.Metrics["peak_angle"],
			tr.Metrics["energy_drift"],
			tr.Metrics["rod_drift"],
			formatPeriod(analysis.ZeroCrossingPeriod(tr.Times(), tr.Angles())),
			formatPeriod(analysis.SmallAnglePeriod(c.RodLength(), g)),
		)
	}
	return w.Flush()
}

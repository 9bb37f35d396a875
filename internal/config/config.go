package config

import (
	"fmt"
	"math"
	"os"

	"github.com/san-kum/pendulum/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 720
	DefaultHeight     = 720
	DefaultCaption    = "Chipmunk Fixed Pendulum Simulation."
	DefaultFontSize   = 16
	DefaultFontPath   = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	DefaultFPS        = 60
	DefaultRate       = 100.0
	DefaultIterations = 10
	DefaultGravityY   = -9807.0 // mm/s²
	DefaultMass       = 0.100   // kg
	DefaultRadius     = 10.0
	DefaultForce      = 10.0 // mN
)

// ErrParameterBounds indicates a configuration value outside its valid range.
// It is the physics sentinel, so callers check one error whichever layer
// rejected the value.
var ErrParameterBounds = physics.ErrParameterBounds

type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Pendulum PendulumConfig `yaml:"pendulum"`
}

type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Caption  string `yaml:"caption"`
	FontSize int    `yaml:"font_size"`
	FontPath string `yaml:"font"`
	FPS      int    `yaml:"fps"`
}

type PhysicsConfig struct {
	Gravity    Vec     `yaml:"gravity"`
	Rate       float64 `yaml:"rate"` // updates per second
	Iterations int     `yaml:"iterations"`
}

type PendulumConfig struct {
	Anchor Vec     `yaml:"anchor"`
	Bob    Vec     `yaml:"bob"`
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
	Force  float64 `yaml:"force"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			Caption:  DefaultCaption,
			FontSize: DefaultFontSize,
			FontPath: DefaultFontPath,
			FPS:      DefaultFPS,
		},
		Physics: PhysicsConfig{
			Gravity:    Vec{X: 0, Y: DefaultGravityY},
			Rate:       DefaultRate,
			Iterations: DefaultIterations,
		},
		Pendulum: PendulumConfig{
			Anchor: Vec{X: 360, Y: 360},
			Bob:    Vec{X: 360, Y: 50},
			Mass:   DefaultMass,
			Radius: DefaultRadius,
			Force:  DefaultForce,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Interval is the fixed physics timestep in seconds.
func (c *Config) Interval() float64 {
	return 1.0 / c.Physics.Rate
}

// RodLength is the anchor to bob distance the pin joint will preserve.
func (c *Config) RodLength() float64 {
	return math.Hypot(c.Pendulum.Bob.X-c.Pendulum.Anchor.X, c.Pendulum.Bob.Y-c.Pendulum.Anchor.Y)
}

func (c *Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrParameterBounds, w.Width, w.Height)
	}
	if w.FontSize <= 0 {
		return fmt.Errorf("%w: font_size %d", ErrParameterBounds, w.FontSize)
	}
	if w.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrParameterBounds, w.FPS)
	}

	p := c.Physics
	if !finite(p.Gravity.X, p.Gravity.Y) {
		return fmt.Errorf("%w: gravity must be finite", ErrParameterBounds)
	}
	if !finite(p.Rate) || p.Rate <= 0 {
		return fmt.Errorf("%w: rate %g", ErrParameterBounds, p.Rate)
	}
	if p.Iterations <= 0 {
		return fmt.Errorf("%w: iterations %d", ErrParameterBounds, p.Iterations)
	}

	pd := c.Pendulum
	if !finite(pd.Anchor.X, pd.Anchor.Y, pd.Bob.X, pd.Bob.Y) {
		return fmt.Errorf("%w: anchor and bob must be finite", ErrParameterBounds)
	}
	if !finite(pd.Mass) || pd.Mass <= 0 {
		return fmt.Errorf("%w: mass %g", ErrParameterBounds, pd.Mass)
	}
	if !finite(pd.Radius) || pd.Radius <= 0 {
		return fmt.Errorf("%w: radius %g", ErrParameterBounds, pd.Radius)
	}
	if !finite(pd.Force) || pd.Force < 0 {
		return fmt.Errorf("%w: force %g", ErrParameterBounds, pd.Force)
	}
	if c.RodLength() == 0 {
		return fmt.Errorf("%w: bob coincides with anchor", ErrParameterBounds)
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

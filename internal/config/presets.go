package config

import (
	"math"
	"sort"
)

// presets modify a fresh default so callers never share state.
var presets = map[string]func(c *Config){
	"default": func(c *Config) {},
	"lunar": func(c *Config) {
		c.Physics.Gravity.Y = -1620
	},
	"heavy": func(c *Config) {
		c.Pendulum.Mass = 1.0
		c.Pendulum.Radius = 20
		c.Pendulum.Force = 100
	},
	"long": func(c *Config) {
		c.Pendulum.Anchor = Vec{X: 360, Y: 700}
		c.Pendulum.Bob = Vec{X: 360, Y: 40}
	},
	"swinging": func(c *Config) {
		c.Pendulum.Bob = offset(c.Pendulum.Anchor, c.RodLength(), 30)
	},
	"fast": func(c *Config) {
		c.Physics.Rate = 240
		c.Physics.Iterations = 20
	},
}

func GetPreset(name string) *Config {
	apply, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// offset places a point at length from anchor, deg degrees counter-clockwise
// from straight down.
func offset(anchor Vec, length, deg float64) Vec {
	rad := deg * math.Pi / 180
	return Vec{
		X: anchor.X + length*math.Sin(rad),
		Y: anchor.Y - length*math.Cos(rad),
	}
}

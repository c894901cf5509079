package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cdc6d/nbody/internal/physics"
	"github.com/cdc6d/nbody/internal/world"
)

const (
	DefaultWidth  = 900
	DefaultHeight = 600
	DefaultTickMS = 20
	DefaultBound  = -100.0
)

// BodyConfig is one body's initial state as it appears in config files.
type BodyConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	VX   float64 `yaml:"vx"`
	VY   float64 `yaml:"vy"`
	Diam float64 `yaml:"diam"`
}

// Config is the full startup configuration. Bodies are fixed for the
// lifetime of a run; nothing here changes after startup.
type Config struct {
	G      float64      `yaml:"g"`
	TickMS int          `yaml:"tick_ms"`
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Bound  float64      `yaml:"bound"`
	Bodies []BodyConfig `yaml:"bodies"`
}

// Default returns the reference configuration: three bodies in a
// 900x600 window at a 20 ms tick.
func Default() *Config {
	return &Config{
		G:      physics.DefaultG,
		TickMS: DefaultTickMS,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Bound:  DefaultBound,
		Bodies: []BodyConfig{
			{X: 10, Y: 10, VX: 1.0, VY: 0, Diam: 18},
			{X: 800, Y: 10, VX: 0.05, VY: 0.4, Diam: 24},
			{X: 400, Y: 400, VX: -1.0, VY: 0.3, Diam: 40},
		},
	}
}

// Load reads a yaml config file, filling unset fields from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields a World construction would not catch.
func (c *Config) Validate() error {
	if c.TickMS <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", c.TickMS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// NewWorld builds the World described by the config.
func (c *Config) NewWorld() (*world.World, error) {
	bodies := make([]world.Body, len(c.Bodies))
	for i, b := range c.Bodies {
		bodies[i] = world.Body{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, Diam: b.Diam}
	}
	return world.New(bodies)
}

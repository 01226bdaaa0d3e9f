package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"modviz/internal/geometry"
)

// Parameter bounds enforced on anything reaching the display
// controller. The kernel itself trusts its caller.
const (
	MinVertexCount = 3
	MaxVertexCount = geometry.MaxVertexCount
	MinModulus     = 1
	MaxModulus     = geometry.MaxModulus
	MinAngleDeg    = -180
	MaxAngleDeg    = 180
)

// Config holds the startup parameters of the visualization.
type Config struct {
	VertexCount int     `yaml:"vertex_count"`
	Modulus     int     `yaml:"modulus"`
	Multiplier  int     `yaml:"multiplier"`
	AngleDeg    int     `yaml:"angle_deg"`
	CanvasSize  float64 `yaml:"canvas_size"`
}

func DefaultConfig() *Config {
	return &Config{
		VertexCount: 3,
		Modulus:     9,
		Multiplier:  2,
		AngleDeg:    0,
		CanvasSize:  1200,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
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

// Clamp forces every parameter into its valid range. The multiplier cap
// is dynamic: it can never exceed the current modulus.
func (c *Config) Clamp() {
	c.VertexCount = clampInt(c.VertexCount, MinVertexCount, MaxVertexCount)
	c.Modulus = clampInt(c.Modulus, MinModulus, MaxModulus)
	c.Multiplier = clampInt(c.Multiplier, 0, c.Modulus)
	c.AngleDeg = clampInt(c.AngleDeg, MinAngleDeg, MaxAngleDeg)
	if c.CanvasSize <= 0 {
		c.CanvasSize = 1200
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

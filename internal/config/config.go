package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEffect  = "plasma"
	DefaultWidth   = 80
	DefaultHeight  = 24
	DefaultFPS     = 30
	DefaultDivisor = 1.0
)

// Config describes one viewer session: which effect to run, the canvas
// size for non-interactive rendering, pacing, and the palette override.
type Config struct {
	Effect  string  `yaml:"effect"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	FPS     int     `yaml:"fps"`
	Seed    int64   `yaml:"seed"`
	Divisor float64 `yaml:"divisor"`
	Palette string  `yaml:"palette"`
}

func DefaultConfig() *Config {
	return &Config{
		Effect:  DefaultEffect,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		FPS:     DefaultFPS,
		Divisor: DefaultDivisor,
		Palette: "default",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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

// Validate rejects configurations the generators cannot render. A zero
// extent canvas is not a generator failure, but it is a useless session; the
// host catches it here.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Divisor == 0 {
		return fmt.Errorf("divisor must be non-zero")
	}
	return nil
}

// Package config holds the display settings of the sinusoid viewer and
// its built-in parameter presets.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme     = "classic"
	DefaultFPS       = 60
	DefaultFrameStep = 0.05
	DefaultColumns   = 75
	DefaultRows      = 19
	DefaultHistory   = 200
	DefaultPreset    = "default"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Theme     string  `yaml:"theme"`
	FPS       int     `yaml:"fps"`
	FrameStep float64 `yaml:"frame_step"`
	Columns   int     `yaml:"columns"`
	Rows      int     `yaml:"rows"`
	History   int     `yaml:"history"`
	Preset    string  `yaml:"preset"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:     DefaultTheme,
		FPS:       DefaultFPS,
		FrameStep: DefaultFrameStep,
		Columns:   DefaultColumns,
		Rows:      DefaultRows,
		History:   DefaultHistory,
		Preset:    DefaultPreset,
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
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Validate checks the display settings.
func (c *Config) Validate() error {
	switch {
	case c.FPS <= 0 || c.FPS > 240:
		return fmt.Errorf("%w: fps %d not in (0, 240]", ErrInvalidConfig, c.FPS)
	case c.FrameStep <= 0:
		return fmt.Errorf("%w: frame_step must be positive", ErrInvalidConfig)
	case c.Columns < 10 || c.Rows < 5:
		return fmt.Errorf("%w: canvas %dx%d below 10x5 cells", ErrInvalidConfig, c.Columns, c.Rows)
	case c.History < 2:
		return fmt.Errorf("%w: history must hold at least 2 samples", ErrInvalidConfig)
	}
	if c.Preset != "" {
		if _, ok := Presets[c.Preset]; !ok {
			return fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, c.Preset)
		}
	}
	return nil
}

// Package config loads the demo application settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SigEntry assigns a time signature from a bar index onward.
type SigEntry struct {
	Bar    int `yaml:"bar"`
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
}

type Config struct {
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	TicksPerBeat  int     `yaml:"ticks_per_beat"`
	PointsPerBeat float64 `yaml:"points_per_beat"`
	MinStepGap    float64 `yaml:"min_step_gap"`
	BPM           float64 `yaml:"bpm"`

	TimeSignatures []SigEntry `yaml:"time_signatures"`

	// OSCAddr is the listen address of the OSC remote-control bridge.
	// Empty disables the bridge.
	OSCAddr string `yaml:"osc_addr"`

	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		WindowWidth:   1280,
		WindowHeight:  480,
		TicksPerBeat:  960,
		PointsPerBeat: 16,
		MinStepGap:    4,
		BPM:           120,
		LogLevel:      "info",
	}
}

// Load reads the config at path over the defaults. A missing file is not an
// error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.TicksPerBeat <= 0 {
		return fmt.Errorf("ticks_per_beat must be positive, got %d", c.TicksPerBeat)
	}
	if c.PointsPerBeat <= 0 {
		return fmt.Errorf("points_per_beat must be positive, got %v", c.PointsPerBeat)
	}
	if c.MinStepGap <= 0 {
		return fmt.Errorf("min_step_gap must be positive, got %v", c.MinStepGap)
	}
	if c.BPM <= 0 {
		return fmt.Errorf("bpm must be positive, got %v", c.BPM)
	}
	for _, sig := range c.TimeSignatures {
		if sig.Bar < 0 || sig.Top < 1 || sig.Bottom < 1 {
			return fmt.Errorf("invalid time signature entry %+v", sig)
		}
	}
	return nil
}

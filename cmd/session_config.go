package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mosviz/mosviz/device"
)

// SweepWindow is one bias window in the session settings file.
type SweepWindow struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Steps int     `yaml:"steps"`
}

// Range converts the window to a model sweep range.
func (w SweepWindow) Range() device.Range {
	return device.Range{Start: w.Start, Stop: w.Stop, Steps: w.Steps}
}

// SessionConfig mirrors the session settings YAML. All keys must be listed
// to satisfy KnownFields(true) strict parsing.
type SessionConfig struct {
	Device       string      `yaml:"device"`
	GateSweep    SweepWindow `yaml:"gate_sweep"`
	DrainSweep   SweepWindow `yaml:"drain_sweep"`
	SurfaceSteps int         `yaml:"surface_steps"`
}

// DefaultSessionConfig returns the built-in bias windows, matching the
// interactive slider ranges of the visualizer.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		GateSweep:    SweepWindow{Start: 0, Stop: 6, Steps: 100},
		DrainSweep:   SweepWindow{Start: 0, Stop: 4, Steps: 100},
		SurfaceSteps: 25,
	}
}

// LoadSessionConfig reads a session settings YAML with strict field checking.
// Keys absent from the file keep their defaults, and a relative device path
// is resolved against the file's directory.
func LoadSessionConfig(path string) (SessionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SessionConfig{}, fmt.Errorf("reading session settings: %w", err)
	}
	cfg := DefaultSessionConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return SessionConfig{}, fmt.Errorf("parsing session settings: %w", err)
	}
	if cfg.Device != "" && !filepath.IsAbs(cfg.Device) {
		cfg.Device = filepath.Join(filepath.Dir(path), cfg.Device)
	}
	return cfg, nil
}

// Validate rejects windows no sweep can be built from.
func (c SessionConfig) Validate() error {
	if c.GateSweep.Steps < 2 {
		return fmt.Errorf("gate_sweep: steps must be at least 2, got %d", c.GateSweep.Steps)
	}
	if c.DrainSweep.Steps < 2 {
		return fmt.Errorf("drain_sweep: steps must be at least 2, got %d", c.DrainSweep.Steps)
	}
	if c.SurfaceSteps < 2 {
		return fmt.Errorf("surface_steps: must be at least 2, got %d", c.SurfaceSteps)
	}
	return nil
}

// Package config describes a land mask pipeline and how to load it.
package config

import (
	"errors"
	"fmt"
)

// Source kinds.
const (
	SourceContinents = "continents"
	SourceNoise      = "noise"
)

// Stage kinds.
const (
	StageZoom = "zoom"
	StageBlur = "blur"
)

// Config holds the generator configuration.
type Config struct {
	Seed   int64         `json:"seed" toml:"seed" yaml:"seed"`
	Source SourceConfig  `json:"source" toml:"source" yaml:"source"`
	Stages []StageConfig `json:"stages" toml:"stages" yaml:"stages"`
	Window WindowConfig  `json:"window" toml:"window" yaml:"window"`

	TileSize int `json:"tile_size" toml:"tile_size" yaml:"tile_size"` // atlas tile edge in cells (0 = one tile for the window)
	Workers  int `json:"workers" toml:"workers" yaml:"workers"`       // parallel tiles (0 = GOMAXPROCS)
}

// SourceConfig selects and parameterises the source stage.
type SourceConfig struct {
	Kind      string  `json:"kind" toml:"kind" yaml:"kind"`
	Salt      int64   `json:"salt" toml:"salt" yaml:"salt"`
	Chance    int32   `json:"chance,omitempty" toml:"chance,omitempty" yaml:"chance,omitempty"`          // continents: land percentage
	Scale     float64 `json:"scale,omitempty" toml:"scale,omitempty" yaml:"scale,omitempty"`             // noise: wavelength in cells
	Threshold float64 `json:"threshold,omitempty" toml:"threshold,omitempty" yaml:"threshold,omitempty"` // noise: land above this value
}

// StageConfig describes one filter after the source.
type StageConfig struct {
	Kind string `json:"kind" toml:"kind" yaml:"kind"`
	Salt int64  `json:"salt" toml:"salt" yaml:"salt"`

	// zoom
	Candidate string `json:"candidate,omitempty" toml:"candidate,omitempty" yaml:"candidate,omitempty"` // "random" or "best"

	// blur
	Axis        string `json:"axis,omitempty" toml:"axis,omitempty" yaml:"axis,omitempty"` // "x" or "z"
	TrueWeight  int32  `json:"true_weight,omitempty" toml:"true_weight,omitempty" yaml:"true_weight,omitempty"`
	FalseWeight int32  `json:"false_weight,omitempty" toml:"false_weight,omitempty" yaml:"false_weight,omitempty"`
}

// WindowConfig is the output window requested from the pipeline.
type WindowConfig struct {
	X     int `json:"x" toml:"x" yaml:"x"`
	Z     int `json:"z" toml:"z" yaml:"z"`
	Width int `json:"width" toml:"width" yaml:"width"`
	Depth int `json:"depth" toml:"depth" yaml:"depth"`
}

// DefaultConfig returns the classic land mask chain: sparse continents
// grown through five zooms, each followed by an X spill blur.
func DefaultConfig() *Config {
	blur := func(salt int64) StageConfig {
		return StageConfig{Kind: StageBlur, Salt: salt, Axis: "x", TrueWeight: 4, FalseWeight: 2}
	}
	zoom := func(salt int64, candidate string) StageConfig {
		return StageConfig{Kind: StageZoom, Salt: salt, Candidate: candidate}
	}

	return &Config{
		Seed:   100,
		Source: SourceConfig{Kind: SourceContinents, Salt: 1, Chance: 10},
		Stages: []StageConfig{
			zoom(2000, "random"), blur(1),
			zoom(2001, "best"), blur(2),
			zoom(2002, "best"), blur(3),
			zoom(2003, "best"), blur(3),
			zoom(2004, "best"), blur(3),
		},
		Window:   WindowConfig{X: -8, Z: -8, Width: 16, Depth: 16},
		TileSize: 64,
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["chance"] {
		cfg.Source.Chance = fromFile.Source.Chance
	}
	if !explicitFlags["x"] {
		cfg.Window.X = fromFile.Window.X
	}
	if !explicitFlags["z"] {
		cfg.Window.Z = fromFile.Window.Z
	}
	if !explicitFlags["width"] {
		cfg.Window.Width = fromFile.Window.Width
	}
	if !explicitFlags["depth"] {
		cfg.Window.Depth = fromFile.Window.Depth
	}
	if !explicitFlags["tile-size"] {
		cfg.TileSize = fromFile.TileSize
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}

	// No flags cover the stage list or the rest of the source.
	chance := cfg.Source.Chance
	cfg.Source = fromFile.Source
	cfg.Source.Chance = chance
	cfg.Stages = append([]StageConfig(nil), fromFile.Stages...)
}

// Validate reports every problem with cfg at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Source.Kind {
	case SourceContinents:
		if c.Source.Chance < 0 || c.Source.Chance > 100 {
			errs = append(errs, fmt.Errorf("source: chance %d outside [0,100]", c.Source.Chance))
		}
	case SourceNoise:
		if c.Source.Scale <= 0 {
			errs = append(errs, errors.New("source: noise scale must be > 0"))
		}
	default:
		errs = append(errs, fmt.Errorf("source: unknown kind %q", c.Source.Kind))
	}

	for i, s := range c.Stages {
		switch s.Kind {
		case StageZoom:
			if s.Candidate != "random" && s.Candidate != "best" {
				errs = append(errs, fmt.Errorf("stage %d: unknown candidate %q", i, s.Candidate))
			}
		case StageBlur:
			if s.Axis != "x" && s.Axis != "z" {
				errs = append(errs, fmt.Errorf("stage %d: unknown axis %q", i, s.Axis))
			}
			if s.TrueWeight < 0 || s.FalseWeight < 0 || s.TrueWeight+s.FalseWeight <= 0 {
				errs = append(errs, fmt.Errorf("stage %d: weights %d:%d", i, s.TrueWeight, s.FalseWeight))
			}
		default:
			errs = append(errs, fmt.Errorf("stage %d: unknown kind %q", i, s.Kind))
		}
	}

	if c.Window.Width <= 0 || c.Window.Depth <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Depth))
	}
	if c.TileSize < 0 {
		errs = append(errs, fmt.Errorf("tile size %d is negative", c.TileSize))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d is negative", c.Workers))
	}
	return errors.Join(errs...)
}

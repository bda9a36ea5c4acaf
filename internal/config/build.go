package config

import (
	"fmt"

	"github.com/OCharnyshevich/landmask/pkg/layer"
	"github.com/OCharnyshevich/landmask/pkg/layer/rng"
)

// Pipeline validates c and builds the stages it describes. Every stage gets
// its own generator from (salt, Seed).
func (c *Config) Pipeline() (*layer.Pipeline[bool], error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	source, err := c.source()
	if err != nil {
		return nil, err
	}

	stages := make([]layer.Filter[bool], 0, len(c.Stages))
	for i, s := range c.Stages {
		f, err := c.stage(s)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		stages = append(stages, f)
	}
	return layer.NewPipeline(source, stages...), nil
}

// OutputWindow returns the configured output window.
func (c *Config) OutputWindow() layer.Window {
	return layer.Window{
		Pos:  layer.Pos{X: c.Window.X, Z: c.Window.Z},
		Size: layer.Size{Width: c.Window.Width, Depth: c.Window.Depth},
	}
}

func (c *Config) source() (layer.Source[bool], error) {
	s := c.Source
	switch s.Kind {
	case SourceNoise:
		n, err := layer.NewNoiseContinents(s.Salt, c.Seed, s.Scale, s.Threshold)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		cont, err := layer.NewContinents(rng.New(s.Salt, c.Seed), s.Chance)
		if err != nil {
			return nil, err
		}
		return cont, nil
	}
}

func (c *Config) stage(s StageConfig) (layer.Filter[bool], error) {
	r := rng.New(s.Salt, c.Seed)

	switch s.Kind {
	case StageZoom:
		if s.Candidate == "best" {
			return layer.NewZoom[bool](r, layer.BestCandidate[bool]{}), nil
		}
		return layer.NewZoom[bool](r, layer.RandomCandidate[bool]{}), nil

	default:
		mix := layer.BoolMix{TrueChance: s.TrueWeight, FalseChance: s.FalseWeight}
		spill := layer.XSpill[bool](mix)
		if s.Axis == "z" {
			spill = layer.ZSpill[bool](mix)
		}
		b, err := layer.NewBlur(r, spill)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named benchmark workload.
type Preset struct {
	Description string
	Bench       BenchConfig
	Width       float64
	Height      float64
}

var Presets = map[string]Preset{
	"quick": {
		Description: "10 rounds of points and segments",
		Bench:       BenchConfig{Iterations: 10, Points: true, Segments: true},
		Width:       DefaultWidth, Height: DefaultHeight,
	},
	"default": {
		Description: "30 rounds of points and segments",
		Bench:       BenchConfig{Iterations: 30, Points: true, Segments: true},
		Width:       DefaultWidth, Height: DefaultHeight,
	},
	"stress": {
		Description: "250 rounds on a 1280x720 board",
		Bench:       BenchConfig{Iterations: 250, Points: true, Segments: true},
		Width:       1280, Height: 720,
	},
	"points": {
		Description: "100 points only",
		Bench:       BenchConfig{Iterations: 100, Points: true},
		Width:       DefaultWidth, Height: DefaultHeight,
	},
	"segments": {
		Description: "100 segments only",
		Bench:       BenchConfig{Iterations: 100, Segments: true},
		Width:       DefaultWidth, Height: DefaultHeight,
	},
}

func GetPreset(name string) (Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return p, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset overwrites the bench section and board size. The seed is kept.
func (c *Config) ApplyPreset(name string) error {
	p, err := GetPreset(name)
	if err != nil {
		return err
	}
	seed := c.Bench.Seed
	c.Bench = p.Bench
	c.Bench.Seed = seed
	c.Board.Width = p.Width
	c.Board.Height = p.Height
	return nil
}

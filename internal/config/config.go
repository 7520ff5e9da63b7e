package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/san-kum/boardlab/internal/bench"
	"github.com/san-kum/boardlab/internal/render"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRenderer    = "canvas"
	DefaultWidth       = 720.0
	DefaultHeight      = 480.0
	DefaultStatsWindow = 40
	DefaultTheme       = "ocean"
	DefaultDataDir     = "~/.boardlab"
)

type Config struct {
	Renderer    string      `yaml:"renderer" toml:"renderer"`
	Board       BoardConfig `yaml:"board" toml:"board"`
	StatsWindow int         `yaml:"stats_window" toml:"stats_window"`
	Bench       BenchConfig `yaml:"bench" toml:"bench"`
	Theme       string      `yaml:"theme" toml:"theme"`
	DataDir     string      `yaml:"data_dir" toml:"data_dir"`
}

type BoardConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Name   string  `yaml:"name" toml:"name"`
}

type BenchConfig struct {
	Iterations int   `yaml:"iterations" toml:"iterations"`
	Points     bool  `yaml:"points" toml:"points"`
	Segments   bool  `yaml:"segments" toml:"segments"`
	Seed       int64 `yaml:"seed" toml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Renderer: DefaultRenderer,
		Board: BoardConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		StatsWindow: DefaultStatsWindow,
		Bench: BenchConfig{
			Iterations: bench.DefaultIterations,
			Points:     true,
			Segments:   true,
		},
		Theme:   DefaultTheme,
		DataDir: DefaultDataDir,
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a YAML or, for a .toml extension, TOML file over the defaults.
func Load(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	var data []byte
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RendererKind parses the configured renderer name.
func (c *Config) RendererKind() (render.Kind, error) {
	return render.ParseKind(c.Renderer)
}

func (c *Config) BoardSize() render.Size {
	return render.Size{Width: c.Board.Width, Height: c.Board.Height}
}

// BenchOptions builds driver options from the bench section and board size.
func (c *Config) BenchOptions() bench.Options {
	return bench.Options{
		Iterations:      c.Bench.Iterations,
		IncludePoints:   c.Bench.Points,
		IncludeSegments: c.Bench.Segments,
		Size:            c.BoardSize(),
		Seed:            c.Bench.Seed,
	}
}

// ResolveDataDir expands a leading ~ in DataDir.
func (c *Config) ResolveDataDir() (string, error) {
	dir := c.DataDir
	if dir == "" {
		dir = DefaultDataDir
	}
	return homedir.Expand(dir)
}

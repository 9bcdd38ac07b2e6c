// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: YAML run configuration for the lvwalk CLI.
//
// Loading policy:
//   - Start from Default(), overlay the file, reject unknown keys.
//   - Validate() checks every section; the CLI applies flag overrides first
//     and validates once.

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvwalk/loader"
	"github.com/katalvlaran/lvwalk/parser"
	"github.com/katalvlaran/lvwalk/walk"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	Input  Input  `yaml:"input"`
	Walk   Walk   `yaml:"walk"`
	Output Output `yaml:"output"`
	Log    Log    `yaml:"log"`
}

// Input selects and tunes the graph loader.
type Input struct {
	Path      string `yaml:"path"`
	Format    string `yaml:"format"`     // adjlist | edgelist
	Mode      string `yaml:"mode"`       // checked | unchecked
	ChunkSize int    `yaml:"chunk_size"` // lines per parse task
	Workers   int    `yaml:"workers"`    // parse workers
}

// Walk holds the corpus parameters.
type Walk struct {
	NumPasses          int     `yaml:"num_passes"`
	PathLength         int     `yaml:"path_length"`
	RestartProbability float64 `yaml:"restart_probability"`
	Seed               int64   `yaml:"seed"`
	// Workers > 0 switches to the parallel per-pass generator.
	Workers int `yaml:"workers"`
}

// Output is where the corpus goes; empty Path means stdout.
type Output struct {
	Path string `yaml:"path"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns a configuration that runs as-is once Input.Path is set.
func Default() Config {
	return Config{
		Input: Input{
			Format:    loader.AdjacencyList.String(),
			Mode:      parser.Checked.String(),
			ChunkSize: loader.DefaultChunkSize,
			Workers:   1,
		},
		Walk: Walk{
			NumPasses:          10,
			PathLength:         40,
			RestartProbability: 0,
			Seed:               walk.DefaultSeed,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the YAML file at path over Default(). An empty path returns
// the defaults unchanged. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("Load: open %q: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("Load: decode %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every section and returns the first problem wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	f, err := loader.ParseFormat(c.Input.Format)
	if err != nil {
		return fmt.Errorf("input.format: %v: %w", err, ErrInvalidConfig)
	}
	if f == loader.SparseMatrix {
		return fmt.Errorf("input.format=%q is not a file format: %w", c.Input.Format, ErrInvalidConfig)
	}
	if _, err := parser.ParseMode(c.Input.Mode); err != nil {
		return fmt.Errorf("input.mode: %v: %w", err, ErrInvalidConfig)
	}
	if c.Input.ChunkSize < 1 {
		return fmt.Errorf("input.chunk_size=%d: %w", c.Input.ChunkSize, ErrInvalidConfig)
	}
	if c.Input.Workers < 1 {
		return fmt.Errorf("input.workers=%d: %w", c.Input.Workers, ErrInvalidConfig)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("walk: %v: %w", err, ErrInvalidConfig)
	}
	if c.Walk.Workers < 0 {
		return fmt.Errorf("walk.workers=%d: %w", c.Walk.Workers, ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %v: %w", err, ErrInvalidConfig)
	}

	return nil
}

// Format returns the parsed input format. Call after Validate.
func (c Config) Format() loader.Format {
	f, _ := loader.ParseFormat(c.Input.Format)
	return f
}

// Params converts the walk section to walk.Params.
func (c Config) Params() walk.Params {
	return walk.Params{
		NumPasses:          c.Walk.NumPasses,
		PathLength:         c.Walk.PathLength,
		RestartProbability: c.Walk.RestartProbability,
	}
}

// LoaderOptions converts the input section to loader options. Call after
// Validate.
func (c Config) LoaderOptions() []loader.Option {
	mode, _ := parser.ParseMode(c.Input.Mode)
	return []loader.Option{
		loader.WithChunkSize(c.Input.ChunkSize),
		loader.WithWorkers(c.Input.Workers),
		loader.WithMode(mode),
	}
}

// Package config loads the YAML run description used by the bfsbrute command.
//
//	puzzle: addition
//	start: 0
//	final: 42
//	steps: [10, 1]
//	ceiling: 0
//	max_depth: 0
//	status: true
//	metrics: false
//	log_level: info
//	log_format: text
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation and decoding failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// PuzzleAddition is the only puzzle the runner knows.
const PuzzleAddition = "addition"

// Config describes one solver run.
type Config struct {
	Puzzle    string `yaml:"puzzle"`
	Start     int    `yaml:"start"`
	Final     int    `yaml:"final"`
	Steps     []int  `yaml:"steps"`
	Ceiling   int    `yaml:"ceiling"`
	MaxDepth  int    `yaml:"max_depth"`
	Status    bool   `yaml:"status"`
	Metrics   bool   `yaml:"metrics"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the addition puzzle from 0 to 42 with status output.
func Default() Config {
	return Config{
		Puzzle:    PuzzleAddition,
		Start:     0,
		Final:     42,
		Steps:     []int{10, 1},
		Status:    true,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	switch {
	case c.Puzzle != PuzzleAddition:
		return fmt.Errorf("%w: unknown puzzle %q", ErrInvalidConfig, c.Puzzle)
	case len(c.Steps) == 0:
		return fmt.Errorf("%w: steps must not be empty", ErrInvalidConfig)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max_depth cannot be negative (%d)", ErrInvalidConfig, c.MaxDepth)
	case c.Ceiling < 0:
		return fmt.Errorf("%w: ceiling cannot be negative (%d)", ErrInvalidConfig, c.Ceiling)
	}
	for _, s := range c.Steps {
		if s == 0 {
			return fmt.Errorf("%w: step 0 never changes the value", ErrInvalidConfig)
		}
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// Package config holds the settings of a self-play batch.
package config

import (
	"errors"
	"fmt"
	"os"

	"mctschess/meta"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Games       int    `yaml:"games"`
	Output      string `yaml:"output"`     // Game report CSV
	Iterations  int    `yaml:"iterations"` // Simulations per decision
	Depth       int    `yaml:"depth"`      // Random plies per rollout
	MaxPlies    int    `yaml:"max_plies"`
	Seed        uint64 `yaml:"seed"` // Zero seeds every searcher from the clock
	Verbose     bool   `yaml:"verbose"`
	MovesOutput string `yaml:"moves_output"` // Optional per-move CSV
	Index       string `yaml:"index"`        // Optional SQLite index
	FEN         string `yaml:"fen"`          // Initial position, empty for the standard one
}

func Default() Config {
	return Config{
		Games:      meta.GAMES,
		Output:     meta.OUTPUT,
		Iterations: meta.EPISODES,
		Depth:      meta.WITH_CUTOFF,
		MaxPlies:   meta.MAX_PLIES,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be at least 1, got %d", c.Games))
	}
	if c.Iterations < 0 {
		errs = append(errs, fmt.Errorf("iterations must not be negative, got %d", c.Iterations))
	}
	if c.Depth < 0 {
		errs = append(errs, fmt.Errorf("depth must not be negative, got %d", c.Depth))
	}
	if c.MaxPlies < 1 {
		errs = append(errs, fmt.Errorf("max plies must be at least 1, got %d", c.MaxPlies))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output path is required"))
	}
	return errors.Join(errs...)
}

// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/numberrush/internal/problemgen"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
}

// GameConfig maps default game settings. Unset keys keep the built-in default.
type GameConfig struct {
	Difficulty  *string `toml:"difficulty"`
	Operation   *string `toml:"operation"`
	NumberCount *int    `toml:"count"`
	Automatic   *bool   `toml:"auto"`
	IntervalMs  *int    `toml:"interval"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Apply overlays the set keys onto base and validates the result.
func (g GameConfig) Apply(base problemgen.Settings) (problemgen.Settings, error) {
	s := base
	if g.Difficulty != nil {
		d, err := problemgen.ParseDifficulty(*g.Difficulty)
		if err != nil {
			return base, fmt.Errorf("config game.difficulty: %w", err)
		}
		s.Difficulty = d
	}
	if g.Operation != nil {
		op, err := problemgen.ParseOperation(*g.Operation)
		if err != nil {
			return base, fmt.Errorf("config game.operation: %w", err)
		}
		s.Operation = op
	}
	if g.NumberCount != nil {
		s.NumberCount = *g.NumberCount
	}
	if g.Automatic != nil {
		s.IsAutomatic = *g.Automatic
	}
	if g.IntervalMs != nil {
		s.TimeInterval = *g.IntervalMs
	}
	if err := s.Validate(); err != nil {
		return base, fmt.Errorf("config game: %w", err)
	}
	return s, nil
}

// DefaultTemplate returns a commented config file with every key disabled.
func DefaultTemplate() string {
	d := problemgen.DefaultSettings()
	return fmt.Sprintf(`# numberrush configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# difficulty = %q   # single, double or triple
# operation = %q    # addition, subtraction or multiplication
# count = %d        # Base operand count (%d-%d)
# auto = %t         # Reveal operands automatically
# interval = %d     # Milliseconds between reveals (%d-%d)
`,
		d.Difficulty, d.Operation,
		d.NumberCount, problemgen.MinNumberCount, problemgen.MaxNumberCount,
		d.IsAutomatic,
		d.TimeInterval, problemgen.MinTimeInterval, problemgen.MaxTimeInterval,
	)
}

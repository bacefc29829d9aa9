// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/puzzle"
)

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("config: invalid configuration")

// Mode names.
const (
	ModeClassic = "classic"
	ModeEndless = "endless"
)

// Config contains all configuration for the game.
type Config struct {
	Mode           string            `yaml:"mode"`
	Target         int               `yaml:"target"`
	Difficulty     DifficultyPreset  `yaml:"difficulty"`
	Spawn          puzzle.SpawnTable `yaml:"spawn"`
	MilestoneTicks int               `yaml:"milestone_ticks"`
	Keys           KeyConfig         `yaml:"keys"`
	Log            LogConfig         `yaml:"log"`
}

// KeyConfig lists the key names bound to each action.
type KeyConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Help    []string `yaml:"help"`
}

// LogConfig defines where and how verbosely the game logs.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty discards logs while the TUI runs
}

// SpawnTable returns the spawn table after applying the difficulty preset.
func (c Config) SpawnTable() puzzle.SpawnTable {
	if t, ok := SpawnTableForPreset(c.Difficulty); ok {
		return t
	}
	return c.Spawn
}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	var errs []error

	switch c.Mode {
	case ModeClassic, ModeEndless:
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}

	// Checked in every mode: --mode can switch an endless file to classic.
	if c.Target < 4 || !puzzle.IsTileValue(c.Target) {
		errs = append(errs, fmt.Errorf("target %d is not a power of two >= 4", c.Target))
	}

	if c.Difficulty != "" {
		if _, err := ParsePreset(string(c.Difficulty)); err != nil {
			errs = append(errs, err)
		}
	}

	if err := c.Spawn.Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.MilestoneTicks < 0 {
		errs = append(errs, fmt.Errorf("milestone_ticks must not be negative, got %d", c.MilestoneTicks))
	}

	if err := c.Keys.validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

func (k KeyConfig) validate() error {
	seen := make(map[string]string)
	groups := []struct {
		name string
		keys []string
	}{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"pause", k.Pause},
		{"restart", k.Restart},
		{"help", k.Help},
	}

	for _, g := range groups {
		if len(g.keys) == 0 && g.name != "help" {
			return fmt.Errorf("no keys bound to %s", g.name)
		}
		for _, key := range g.keys {
			if prev, ok := seen[key]; ok {
				return fmt.Errorf("key %q bound to both %s and %s", key, prev, g.name)
			}
			seen[key] = g.name
		}
	}
	return nil
}

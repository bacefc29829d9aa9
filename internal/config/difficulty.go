package config

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/puzzle"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
}

// SpawnTableForPreset returns the spawn table for a preset.
// More 4s mean fewer merges before the board fills up.
func SpawnTableForPreset(preset DifficultyPreset) (puzzle.SpawnTable, bool) {
	switch preset {
	case DifficultyEasy:
		return puzzle.SpawnTable{{Value: 2, Weight: 19}, {Value: 4, Weight: 1}}, true
	case DifficultyNormal:
		return puzzle.DefaultSpawnTable(), true
	case DifficultyHard:
		return puzzle.SpawnTable{{Value: 2, Weight: 3}, {Value: 4, Weight: 1}}, true
	default:
		return nil, false
	}
}

// ApplyPreset sets the difficulty on cfg. An empty preset is a no-op.
func ApplyPreset(cfg *Config, name string) error {
	if name == "" {
		return nil
	}
	preset, err := ParsePreset(name)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.Difficulty = preset
	return nil
}

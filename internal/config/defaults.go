package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/puzzle"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return builtinConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

func builtinConfig() Config {
	return Config{
		Mode:           ModeClassic,
		Target:         2048,
		Spawn:          puzzle.DefaultSpawnTable(),
		MilestoneTicks: 90,
		Keys: KeyConfig{
			Up:      []string{"up", "w"},
			Down:    []string{"down", "s"},
			Left:    []string{"left", "a"},
			Right:   []string{"right", "d"},
			Pause:   []string{"p"},
			Restart: []string{"r"},
			Help:    []string{"?"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	flagMode       string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game. Without --mode a menu asks for the mode.

Controls (remappable in the config file):
  Arrows/WASD  - Slide
  P            - Pause
  R            - Restart (after the game ends)
  ?            - Toggle help
  Ctrl+C       - Quit (as does any unbound key)

Modes:
  classic - Win by reaching the target tile (default 2048)
  endless - Play until the board locks

Difficulty options (chance that a new tile is a 4):
  easy   - 5%
  normal - 10%
  hard   - 25%

Examples:
  t2048 play
  t2048 play --mode classic --seed 42
  t2048 play --mode endless --difficulty hard
  t2048 play --config ./my-2048.yaml --log-file /tmp/t2048.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: classic, endless (default: ask)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig(flagDifficulty)

	// The log is closed before exiting, so a failed game still leaves a
	// complete log file behind.
	err := logging.Run(cfg.Log.File, cfg.Log.Level, func(logger *log.Logger) error {
		return play(cfg, logger)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(cfg config.Config, logger *log.Logger) error {
	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	mode := flagMode
	if mode == "" {
		selected, err := tui.RunModeSelector(width, height, cfg.Mode)
		if err != nil {
			return err
		}
		// User quit the menu
		if selected == "" {
			return nil
		}
		mode = selected
	}

	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q (run 't2048 list' to see available modes)", mode)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	game, err := registry.Create(mode, registry.Options{Config: cfg, Logger: logger})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "mode", mode, "seed", seed, "difficulty", cfg.Difficulty, "target", cfg.Target)

	if err := tui.Run(game, tui.NewKeyMap(cfg.Keys), rc, logger); err != nil {
		logger.Error("game failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

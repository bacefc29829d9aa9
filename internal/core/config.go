package core

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic tile spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves    int  // Moves that changed the board
	MaxTile  int  // Highest tile on the board
	GameOver bool // No move is possible, or the target was reached
	Won      bool // The target tile was reached
	Paused   bool // Paused, window too small or showing a milestone
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State   GameState
	Moved   bool // A move changed the board this tick
	Spawned bool // A tile was spawned after the move
}

package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateMilestone   GameStateType = "milestone"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "classic" or "endless"
	Moves   int
	Target  int   // 0 in endless mode
	Board   []int // Row-major cell values
	MaxTile int
	Grid    string // Plain-text grid, one row per line
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.milestone != nil:
		state = StateMilestone
	}

	s := Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Moves:  g.moves,
		Target: g.target,
		State:  state,
	}
	if g.puzzle != nil {
		s.Board = g.puzzle.GetStates()
		s.MaxTile = g.puzzle.Board().MaxTile()
		s.Grid = g.puzzle.String()
	}
	return s
}

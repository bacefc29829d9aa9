package t2048

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/puzzle"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = config.ModeClassic
	ModeEndless Mode = config.ModeEndless
)

// Game drives a puzzle.Game from per-tick input.
type Game struct {
	mode   Mode
	cfg    config.Config
	logger *log.Logger

	puzzle *puzzle.Game
	tick   uint64
	moves  int
	target int // 0 in endless mode

	nextMilestone  int        // Index of the next milestone to announce
	milestone      *Milestone // Milestone currently on screen
	milestoneTicks int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a new classic mode game.
func New(opts registry.Options) *Game {
	return newGame(ModeClassic, opts)
}

// NewEndless creates a new endless mode game.
func NewEndless(opts registry.Options) *Game {
	return newGame(ModeEndless, opts)
}

func newGame(mode Mode, opts registry.Options) *Game {
	cfg := opts.Config
	if cfg.Mode == "" {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{
		mode:   mode,
		cfg:    cfg,
		logger: logger.WithPrefix("t2048/" + string(mode)),
	}
}

func init() {
	registry.Register(string(ModeClassic), "2048", func(opts registry.Options) registry.Game {
		return New(opts)
	})
	registry.Register(string(ModeEndless), "2048 (Endless)", func(opts registry.Options) registry.Game {
		return NewEndless(opts)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.puzzle = puzzle.New(
		puzzle.WithSeed(cfg.Seed),
		puzzle.WithSpawnTable(g.cfg.SpawnTable()),
	)
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.won = false
	g.paused = false
	g.milestone = nil
	g.milestoneTicks = 0

	g.target = 0
	if g.mode == ModeClassic {
		g.target = g.cfg.Target
	}
	g.nextMilestone = firstMilestoneAbove(g.puzzle.Board().MaxTile())

	g.checkScreenSize()

	g.logger.Debug("reset", "seed", cfg.Seed, "target", g.target, "board", g.puzzle.GetStates())
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board plus HUD above and controls below.
	minW := boardWidth + 2
	minH := boardHeight + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform calling Reset.
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if g.milestone != nil {
		g.milestoneTicks--
		if g.milestoneTicks <= 0 {
			g.milestone = nil
		}
		return core.StepResult{State: g.State()}
	}

	if in.Empty() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	return g.processMove(dir)
}

// directionFor picks the move direction of this tick, if any.
func directionFor(in core.InputFrame) (puzzle.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return puzzle.Up, true
	case in.Has(core.ActionDown):
		return puzzle.Down, true
	case in.Has(core.ActionLeft):
		return puzzle.Left, true
	case in.Has(core.ActionRight):
		return puzzle.Right, true
	}
	return 0, false
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir puzzle.Direction) core.StepResult {
	moved := g.puzzle.Step(dir)
	g.logger.Debug("move", "dir", dir, "moved", moved)

	if !moved {
		// Board didn't change - don't spawn new tile
		return core.StepResult{State: g.State()}
	}

	g.moves++
	spawned := g.puzzle.GenerateNewCell()
	board := g.puzzle.Board()

	if g.target > 0 && puzzle.Reached(board, g.target) {
		g.won = true
		g.logger.Info("target reached", "target", g.target, "moves", g.moves)
		return core.StepResult{State: g.State(), Moved: true, Spawned: spawned}
	}

	g.checkMilestones(board)

	if puzzle.IsLost(board) {
		g.gameOver = true
		g.logger.Info("game over", "moves", g.moves, "max_tile", board.MaxTile())
	}

	return core.StepResult{State: g.State(), Moved: true, Spawned: spawned}
}

// checkMilestones announces the highest milestone newly reached.
func (g *Game) checkMilestones(board *puzzle.Board) {
	var reached *Milestone
	for g.nextMilestone < len(Milestones) && puzzle.Reached(board, Milestones[g.nextMilestone].Target) {
		reached = &Milestones[g.nextMilestone]
		g.nextMilestone++
	}
	if reached == nil {
		return
	}

	g.logger.Info("milestone", "target", reached.Target, "name", reached.Name, "moves", g.moves)
	if g.cfg.MilestoneTicks > 0 {
		g.milestone = reached
		g.milestoneTicks = g.cfg.MilestoneTicks
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	maxTile := 0
	if g.puzzle != nil {
		maxTile = g.puzzle.Board().MaxTile()
	}
	return core.GameState{
		Moves:    g.moves,
		MaxTile:  maxTile,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.milestone != nil,
	}
}

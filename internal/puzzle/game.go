package puzzle

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// InitialTiles is the number of tiles placed by New.
const InitialTiles = 2

// Game owns a Board and the random source used for spawning.
type Game struct {
	board *Board
	rng   *rand.Rand
	spawn SpawnTable
}

// Option configures a Game in New.
type Option func(*Game)

// WithSeed seeds the game's random source.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses rng as the game's random source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithSpawnTable sets the distribution of spawned values.
// Invalid tables are ignored and the default is kept.
func WithSpawnTable(t SpawnTable) Option {
	return func(g *Game) {
		if t.Validate() == nil {
			g.spawn = t
		}
	}
}

// New creates a game with two tiles on random empty cells.
// Without WithSeed or WithRand the source is seeded from the clock.
func New(opts ...Option) *Game {
	g := &Game{
		board: NewBoard(),
		spawn: DefaultSpawnTable(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for range InitialTiles {
		g.GenerateNewCell()
	}
	return g
}

// Board returns the game's board. Callers must not modify it.
func (g *Game) Board() *Board {
	return g.board
}

// SpawnTable returns the distribution used for new tiles.
func (g *Game) SpawnTable() SpawnTable {
	return g.spawn
}

// Step moves every tile toward dir and reports whether anything moved or
// merged. It never spawns; callers spawn with GenerateNewCell when it
// returns true.
func (g *Game) Step(dir Direction) bool {
	return g.board.Apply(dir)
}

// GenerateNewCell writes a new tile into a uniformly chosen empty cell.
// It returns false, leaving the board untouched, if the board is full.
func (g *Game) GenerateNewCell() bool {
	empty := g.board.EmptyCells()
	if len(empty) == 0 {
		return false
	}

	cell := empty[g.rng.Intn(len(empty))]
	g.board.set(cell, g.spawn.Pick(g.rng))
	return true
}

// SetStates loads row-major values into the board.
func (g *Game) SetStates(values []int) error {
	return g.board.Load(values)
}

// GetStates returns the board values in row-major order.
func (g *Game) GetStates() []int {
	return g.board.Values()
}

// String renders the board as right-aligned columns, one row per line.
// Columns are at least one space apart.
// Empty cells are shown as ".".
func (g *Game) String() string {
	var sb strings.Builder
	n := g.board.Size()
	for y := range n {
		for x := range n {
			cell := "."
			if v := g.board.Get(x, y); v != 0 {
				cell = strconv.Itoa(v)
			}
			// Every cell starts with a space so wide tiles never touch.
			sb.WriteString(strings.Repeat(" ", max(1, cellWidth-len(cell))))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

const cellWidth = 7

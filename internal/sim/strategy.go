package sim

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/puzzle"
)

// Strategy picks the next direction for a board that still has a move.
type Strategy func(b *puzzle.Board, rng *rand.Rand) puzzle.Direction

// Strategy names.
const (
	StrategyRandom = "random"
	StrategyCorner = "corner"
)

// CornerOrder keeps large tiles in the bottom-left corner.
var CornerOrder = []puzzle.Direction{puzzle.Down, puzzle.Left, puzzle.Right, puzzle.Up}

// StrategyNames lists the accepted strategy names.
func StrategyNames() []string {
	return []string{StrategyRandom, StrategyCorner}
}

// ParseStrategy returns the strategy registered under name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyRandom, "":
		return Random, nil
	case StrategyCorner:
		return Corner, nil
	}
	return nil, fmt.Errorf("sim: unknown strategy %q (want one of %s)", name, strings.Join(StrategyNames(), ", "))
}

// Random picks uniformly among the directions that change the board.
func Random(b *puzzle.Board, rng *rand.Rand) puzzle.Direction {
	moves := movable(b)
	if len(moves) == 0 {
		return puzzle.Up
	}
	return moves[rng.Intn(len(moves))]
}

// Corner tries Down, Left, Right, Up and takes the first that moves.
func Corner(b *puzzle.Board, rng *rand.Rand) puzzle.Direction {
	return Prefer(CornerOrder)(b, rng)
}

// Prefer returns a strategy that takes the first direction of order that
// moves, falling back to a random move when none of them does.
func Prefer(order []puzzle.Direction) Strategy {
	order = slices.Clone(order)
	return func(b *puzzle.Board, rng *rand.Rand) puzzle.Direction {
		for _, dir := range order {
			if b.Clone().Apply(dir) {
				return dir
			}
		}
		if rng == nil {
			return puzzle.Up
		}
		return Random(b, rng)
	}
}

// ParseOrder reads a comma-separated direction list such as
// "down,left,right,up". Directions may not repeat.
func ParseOrder(s string) ([]puzzle.Direction, error) {
	var order []puzzle.Direction
	for _, name := range strings.Split(s, ",") {
		dir, err := puzzle.ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
		if slices.Contains(order, dir) {
			return nil, fmt.Errorf("sim: direction %s repeated in %q", dir, s)
		}
		order = append(order, dir)
	}
	return order, nil
}

func movable(b *puzzle.Board) []puzzle.Direction {
	var out []puzzle.Direction
	for _, dir := range puzzle.Directions() {
		if b.Clone().Apply(dir) {
			out = append(out, dir)
		}
	}
	return out
}

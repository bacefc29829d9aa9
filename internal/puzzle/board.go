// Package puzzle implements the 2048 grid: the per-line compress-and-merge
// transform, tile spawning and terminal-state predicates.
// It has no terminal or UI dependencies.
package puzzle

import (
	"errors"
	"fmt"
)

// BoardSize is the board dimension.
const BoardSize = 4

// ErrInvalidState is returned when loading values that cannot form a board.
var ErrInvalidState = errors.New("puzzle: invalid board state")

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Board is a square grid of tile values stored in row-major order.
// A value of 0 is an empty cell; every other value is a power of two >= 2.
type Board struct {
	size  int
	cells []int
}

// NewBoard creates an empty BoardSize x BoardSize board.
func NewBoard() *Board {
	return &Board{
		size:  BoardSize,
		cells: make([]int, BoardSize*BoardSize),
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// Get returns the value at column x, row y.
// Out-of-bounds coordinates return 0.
func (b *Board) Get(x, y int) int {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return 0
	}
	return b.cells[y*b.size+x]
}

func (b *Board) set(c Cell, v int) {
	b.cells[c.Y*b.size+c.X] = v
}

// Values returns a copy of the cells in row-major order.
func (b *Board) Values() []int {
	out := make([]int, len(b.cells))
	copy(out, b.cells)
	return out
}

// Load replaces the board contents with row-major values.
// The board is left untouched when values are rejected.
func (b *Board) Load(values []int) error {
	if len(values) != len(b.cells) {
		return fmt.Errorf("%w: got %d values, want %d", ErrInvalidState, len(values), len(b.cells))
	}
	for i, v := range values {
		if !IsTileValue(v) {
			return fmt.Errorf("%w: value %d at index %d is not a tile", ErrInvalidState, v, i)
		}
	}
	copy(b.cells, values)
	return nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		size:  b.size,
		cells: b.Values(),
	}
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (b *Board) EmptyCells() []Cell {
	var cells []Cell
	for y := range b.size {
		for x := range b.size {
			if b.cells[y*b.size+x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Full returns true if no cell is empty.
func (b *Board) Full() bool {
	for _, v := range b.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// MaxTile returns the maximum tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Apply slides every line toward the anchor edge of dir, merging equal
// neighbours once. Returns true if any cell changed.
// Unknown directions leave the board untouched.
func (b *Board) Apply(dir Direction) bool {
	if !dir.valid() {
		return false
	}

	changed := false
	line := make([]int, b.size)

	for l := range b.size {
		for pos := range b.size {
			line[pos] = b.cells[b.index(dir, l, pos)]
		}

		packed := slideLine(line)

		for pos := range b.size {
			i := b.index(dir, l, pos)
			if b.cells[i] != packed[pos] {
				b.cells[i] = packed[pos]
				changed = true
			}
		}
	}

	return changed
}

// index maps position pos of line l to a cell offset so that pos 0 is
// always the anchor edge of dir. Rows are lines for Left/Right, columns
// for Up/Down.
func (b *Board) index(dir Direction, l, pos int) int {
	n := b.size
	switch dir {
	case Left:
		return l*n + pos
	case Right:
		return l*n + (n - 1 - pos)
	case Up:
		return pos*n + l
	default: // Down
		return (n-1-pos)*n + l
	}
}

// slideLine compresses, merges and re-packs a line whose index 0 is the
// anchor. The result has the same length, padded with zeros.
func slideLine(line []int) []int {
	packed := compress(line)

	// A merged value is never merged again in the same pass.
	for i := 0; i+1 < len(packed); i++ {
		if packed[i] != 0 && packed[i] == packed[i+1] {
			packed[i] *= 2
			packed[i+1] = 0
			i++
		}
	}

	result := compress(packed)
	for len(result) < len(line) {
		result = append(result, 0)
	}
	return result
}

// compress drops zeros while keeping the order of the remaining values.
func compress(line []int) []int {
	out := make([]int, 0, len(line))
	for _, v := range line {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}

// IsTileValue reports whether v may be stored in a cell.
func IsTileValue(v int) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}

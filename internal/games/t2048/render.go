package t2048

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/puzzle"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardWidth  = puzzle.BoardSize*cellWidth + 1  // +1 for right border
	boardHeight = puzzle.BoardSize*cellHeight + 1 // +1 for bottom border
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.puzzle == nil {
		return
	}

	boardX := (g.screenW - boardWidth) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardWidth, boardHeight))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the move counter and target info.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.Title()
	dst.DrawText(boardX+(boardWidth-core.TextWidth(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	maxTile := g.puzzle.Board().MaxTile()
	info := fmt.Sprintf("Max: %d", maxTile)
	if g.target > 0 {
		info = fmt.Sprintf("Max: %d  Target: %d", maxTile, g.target)
	}
	infoX := max(boardX+boardWidth-core.TextWidth(info), boardX)
	dst.DrawText(infoX, 2, info)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := puzzle.BoardSize
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, gridCorner(x, y, n))

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	board := g.puzzle.Board()
	for y := range n {
		for x := range n {
			val := board.Get(x, y)
			if val == 0 {
				continue
			}
			s := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(s))/2, 0)
			dst.DrawText(boardX+x*cellWidth+1+padLeft, boardY+y*cellHeight+1, s)
		}
	}
}

// gridCorner picks the box-drawing rune for the grid intersection (x, y).
func gridCorner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, board, "PAUSED", keyHint("Press %s to resume", g.cfg.Keys.Pause))
	case g.won:
		drawOverlay(dst, board, "YOU WIN!", fmt.Sprintf("%d in %d moves", g.target, g.moves), keyHint("Press %s to restart", g.cfg.Keys.Restart))
	case g.gameOver:
		drawOverlay(dst, board, "GAME OVER", fmt.Sprintf("Max tile: %d", g.puzzle.Board().MaxTile()), keyHint("Press %s to restart", g.cfg.Keys.Restart))
	case g.milestone != nil:
		drawOverlay(dst, board, fmt.Sprintf("%d!", g.milestone.Target), g.milestone.Name)
	}
}

// keyHint fills format with the first configured key, upper-cased when it
// is a single letter.
func keyHint(format string, keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	k := keys[0]
	if len(k) == 1 {
		k = strings.ToUpper(k)
	}
	return fmt.Sprintf(format, k)
}

// drawOverlay draws a boxed block of lines centered on area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, core.TextWidth(line))
	}

	box := area.CenteredRect(maxLen+4, len(lines)+2)
	dst.ClearRect(box)
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(cx-core.TextWidth(line)/2, box.Y+1+i, line)
	}
}

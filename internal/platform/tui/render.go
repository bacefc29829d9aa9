package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// RenderScreen converts a Screen buffer to a string centered in a
// width x height area. Blank margins around the drawn content are
// dropped before placing it.
func RenderScreen(s *core.Screen, width, height int) string {
	r, ok := contentBounds(s)
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "")
	}

	lines := make([]string, 0, r.H)
	for y := r.Y; y < r.Bottom(); y++ {
		row := []rune(s.Row(y))
		lines = append(lines, string(row[r.X:r.Right()]))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}

// contentBounds returns the smallest rectangle holding every non-blank cell.
func contentBounds(s *core.Screen) (core.Rect, bool) {
	minX, minY := s.Width(), s.Height()
	maxX, maxY := -1, -1
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) == ' ' {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		return core.Rect{}, false
	}
	return core.NewRect(minX, minY, maxX-minX+1, maxY-minY+1), true
}

package sim

import (
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
)

// WinTile is the tile counted as a win in reports.
const WinTile = 2048

var lang = language.English

// Report summarizes a set of simulated games.
type Report struct {
	Games       int
	TotalMoves  int
	MeanMoves   float64
	StdMoves    float64
	MedianMoves float64
	MeanMaxTile float64
	StdMaxTile  float64
	BestTile    int
	MaxTiles    map[int]int // max tile -> number of games ending with it
	Reached2048 int
	Elapsed     time.Duration
	Results     []GameResult
}

// NewReport computes the statistics for results.
func NewReport(results []GameResult, elapsed time.Duration) Report {
	r := Report{
		Games:    len(results),
		MaxTiles: make(map[int]int),
		Elapsed:  elapsed,
		Results:  results,
	}
	if len(results) == 0 {
		return r
	}

	moves := make([]float64, len(results))
	tiles := make([]float64, len(results))
	for i, g := range results {
		moves[i] = float64(g.Moves)
		tiles[i] = float64(g.MaxTile)
		r.TotalMoves += g.Moves
		r.MaxTiles[g.MaxTile]++
		r.BestTile = max(r.BestTile, g.MaxTile)
		if g.MaxTile >= WinTile {
			r.Reached2048++
		}
	}

	r.MeanMoves, r.StdMoves = stat.MeanStdDev(moves, nil)
	r.MeanMaxTile, r.StdMaxTile = stat.MeanStdDev(tiles, nil)
	if len(results) == 1 {
		r.StdMoves, r.StdMaxTile = 0, 0 // sample deviation is undefined
	}

	slices.Sort(moves)
	r.MedianMoves = stat.Quantile(0.5, stat.Empirical, moves, nil)
	return r
}

// WinRate returns the share of games that reached WinTile.
func (r Report) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Reached2048) / float64(r.Games)
}

// Table renders the report as a boxed two-column text table.
func (r Report) Table(title string) string {
	p := message.NewPrinter(lang)

	keys := []string{"Games", "Total Moves", "Moves (mean)", "Moves (std)", "Moves (median)", "Max Tile (mean)", "Max Tile (std)", "Best Tile", "Reached 2048", "Elapsed"}
	vals := map[string]string{
		"Games":           p.Sprintf("%d", r.Games),
		"Total Moves":     p.Sprintf("%d", r.TotalMoves),
		"Moves (mean)":    p.Sprintf("%.1f", r.MeanMoves),
		"Moves (std)":     p.Sprintf("%.1f", r.StdMoves),
		"Moves (median)":  p.Sprintf("%.0f", r.MedianMoves),
		"Max Tile (mean)": p.Sprintf("%.1f", r.MeanMaxTile),
		"Max Tile (std)":  p.Sprintf("%.1f", r.StdMaxTile),
		"Best Tile":       p.Sprintf("%d", r.BestTile),
		"Reached 2048":    p.Sprintf("%d (%.2f%%)", r.Reached2048, r.WinRate()*100),
		"Elapsed":         r.Elapsed.Round(time.Millisecond).String(),
	}

	tiles := make([]int, 0, len(r.MaxTiles))
	for t := range r.MaxTiles {
		tiles = append(tiles, t)
	}
	slices.Sort(tiles)
	for _, t := range tiles {
		k := p.Sprintf("Max Tile %d", t)
		keys = append(keys, k)
		vals[k] = p.Sprintf("%d", r.MaxTiles[t])
	}

	return fmtTable(title, keys, vals)
}

func fmtTable(title string, keys []string, vals map[string]string) string {
	keyW, valW := 0, 0
	for _, k := range keys {
		keyW = max(keyW, runewidth.StringWidth(k))
		valW = max(valW, runewidth.StringWidth(vals[k]))
	}
	keyW += 2
	valW += 2

	inner := keyW + valW + 1
	titleW := runewidth.StringWidth(title)
	if titleW > inner {
		valW += titleW - inner
		inner = titleW
	}

	divider := "+" + strings.Repeat("-", keyW) + "+" + strings.Repeat("-", valW) + "+\n"
	top := "+" + strings.Repeat("-", inner) + "+\n"
	left := (inner - titleW) / 2

	var sb strings.Builder
	sb.WriteString(top)
	sb.WriteString("|" + blank(left) + title + blank(inner-titleW-left) + "|\n")
	sb.WriteString(divider)
	for _, k := range keys {
		v := vals[k]
		sb.WriteString("| " + k + blank(keyW-2-runewidth.StringWidth(k)) + " | " + v + blank(valW-2-runewidth.StringWidth(v)) + " |\n")
	}
	sb.WriteString(divider)
	return sb.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}

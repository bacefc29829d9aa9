package sim

import (
	"context"
	"errors"
	"io"
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/puzzle"
)

func loadBoard(t *testing.T, cells []int) *puzzle.Board {
	t.Helper()
	b := puzzle.NewBoard()
	if err := b.Load(cells); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return b
}

func TestRunRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no games", Options{Games: 0}},
		{"negative max moves", Options{Games: 1, MaxMoves: -1}},
		{"bad spawn table", Options{Games: 1, Spawn: puzzle.SpawnTable{{Value: 3, Weight: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Quiet = true
			if _, err := Run(context.Background(), tt.opts); err == nil {
				t.Error("Run() error = nil, want error")
			}
		})
	}
}

func TestRunDeterministic(t *testing.T) {
	opts := Options{Games: 8, Seed: 2048, MaxMoves: 300, Quiet: true}

	first, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	opts.Workers = 4
	second, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(first.Results) != 8 || len(second.Results) != 8 {
		t.Fatalf("results = %d and %d, want 8", len(first.Results), len(second.Results))
	}
	for i := range first.Results {
		if first.Results[i] != second.Results[i] {
			t.Errorf("game %d = %+v, want %+v", i, second.Results[i], first.Results[i])
		}
		if first.Results[i].Seed != 2048+int64(i) {
			t.Errorf("game %d seed = %d, want %d", i, first.Results[i].Seed, 2048+int64(i))
		}
	}
}

func TestRunMaxMoves(t *testing.T) {
	report, err := Run(context.Background(), Options{Games: 3, Seed: 1, MaxMoves: 10, Strategy: Corner, Quiet: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, r := range report.Results {
		if r.Moves > 10 {
			t.Errorf("game %d moves = %d, want at most 10", r.Seed, r.Moves)
		}
		if r.MaxTile < 2 {
			t.Errorf("game %d max tile = %d, want at least 2", r.Seed, r.MaxTile)
		}
	}
}

func TestRunPlaysToLoss(t *testing.T) {
	report, err := Run(context.Background(), Options{Games: 2, Seed: 5, Quiet: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, r := range report.Results {
		if !r.Lost {
			t.Errorf("game %d ended without a loss: %+v", r.Seed, r)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, Options{Games: 100, Quiet: true, Output: io.Discard})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if report.Games != 0 {
		t.Errorf("Games = %d, want 0", report.Games)
	}
}

func TestNewReport(t *testing.T) {
	report := NewReport([]GameResult{
		{Moves: 500, MaxTile: 256},
		{Moves: 600, MaxTile: 2048},
		{Moves: 400, MaxTile: 256},
	}, 0)

	if report.Games != 3 || report.TotalMoves != 1500 {
		t.Errorf("Games, TotalMoves = %d, %d, want 3, 1500", report.Games, report.TotalMoves)
	}
	if report.MeanMoves != 500 {
		t.Errorf("MeanMoves = %v, want 500", report.MeanMoves)
	}
	if math.Abs(report.StdMoves-100) > 1e-9 {
		t.Errorf("StdMoves = %v, want 100", report.StdMoves)
	}
	if report.MedianMoves != 500 {
		t.Errorf("MedianMoves = %v, want 500", report.MedianMoves)
	}
	if report.BestTile != 2048 || report.Reached2048 != 1 {
		t.Errorf("BestTile, Reached2048 = %d, %d, want 2048, 1", report.BestTile, report.Reached2048)
	}
	if report.MaxTiles[256] != 2 || report.MaxTiles[2048] != 1 {
		t.Errorf("MaxTiles = %v", report.MaxTiles)
	}

	single := NewReport([]GameResult{{Moves: 10, MaxTile: 64}}, 0)
	if single.StdMoves != 0 || single.StdMaxTile != 0 {
		t.Errorf("single game std = %v, %v, want 0", single.StdMoves, single.StdMaxTile)
	}

	empty := NewReport(nil, 0)
	if empty.Games != 0 || empty.WinRate() != 0 {
		t.Errorf("empty report = %+v", empty)
	}
}

func TestReportTable(t *testing.T) {
	report := NewReport([]GameResult{
		{Moves: 700, MaxTile: 256},
		{Moves: 800, MaxTile: 2048},
	}, 0)

	table := report.Table("corner x2")
	for _, want := range []string{"corner x2", "Total Moves", "1,500", "Max Tile 2,048", "50.00%"} {
		if !strings.Contains(table, want) {
			t.Errorf("Table() missing %q:\n%s", want, table)
		}
	}

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	width := len(lines[0])
	for _, line := range lines {
		if len(line) != width {
			t.Errorf("ragged table line %q (len %d, want %d)", line, len(line), width)
		}
	}
}

func TestCorner(t *testing.T) {
	// Only Up and Right move a lone tile in the bottom-left corner.
	b := loadBoard(t, []int{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		2, 0, 0, 0,
	})
	if got := Corner(b, nil); got != puzzle.Right {
		t.Errorf("Corner() = %v, want right", got)
	}

	rng := rand.New(rand.NewSource(1))
	for range 50 {
		if got := Random(b, rng); got != puzzle.Up && got != puzzle.Right {
			t.Fatalf("Random() = %v, want up or right", got)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"random", "Corner", ""} {
		if _, err := ParseStrategy(name); err != nil {
			t.Errorf("ParseStrategy(%q) error = %v", name, err)
		}
	}
	if _, err := ParseStrategy("greedy"); err == nil {
		t.Error("ParseStrategy(greedy) error = nil, want error")
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    []puzzle.Direction
		wantErr bool
	}{
		{"down,left,right,up", CornerOrder, false},
		{" Up , Right ", []puzzle.Direction{puzzle.Up, puzzle.Right}, false},
		{"left", []puzzle.Direction{puzzle.Left}, false},
		{"left,diagonal", nil, true},
		{"left,left", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrder(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOrder(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !slices.Equal(got, tt.want) {
				t.Errorf("ParseOrder(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrefer(t *testing.T) {
	// Only Up and Right move a lone tile in the bottom-left corner.
	b := loadBoard(t, []int{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		2, 0, 0, 0,
	})

	if got := Prefer([]puzzle.Direction{puzzle.Up, puzzle.Right})(b, nil); got != puzzle.Up {
		t.Errorf("Prefer(up,right) = %v, want up", got)
	}

	// None of the preferred directions moves: fall back to a move that does.
	rng := rand.New(rand.NewSource(3))
	if got := Prefer([]puzzle.Direction{puzzle.Down, puzzle.Left})(b, rng); got != puzzle.Up && got != puzzle.Right {
		t.Errorf("Prefer(down,left) = %v, want a moving direction", got)
	}
}

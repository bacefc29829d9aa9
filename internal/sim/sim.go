// Package sim plays games headlessly with a fixed strategy and reports
// statistics over the results.
package sim

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb/v3"

	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/puzzle"
)

// Options control a simulation run.
type Options struct {
	Games    int               // Number of games, at least 1
	Seed     int64             // Game i uses Seed+i
	Strategy Strategy          // nil means Random
	MaxMoves int               // Per-game move cap, 0 for none
	Workers  int               // Concurrent games, 0 or 1 runs sequentially
	Spawn    puzzle.SpawnTable // nil means the default table
	Quiet    bool              // Hide the progress bar
	Output   io.Writer         // Progress bar destination, default stderr
	Logger   *log.Logger       // nil discards
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Seed    int64
	Moves   int
	MaxTile int
	Lost    bool // false when stopped by MaxMoves
}

// Run plays opts.Games games and summarizes them.
// Cancelling ctx stops workers between games; the report then covers the
// games that finished and the context error is returned with it.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Games < 1 {
		return Report{}, fmt.Errorf("sim: games must be at least 1, got %d", opts.Games)
	}
	if opts.MaxMoves < 0 {
		return Report{}, fmt.Errorf("sim: max moves must not be negative, got %d", opts.MaxMoves)
	}
	if opts.Spawn != nil {
		if err := opts.Spawn.Validate(); err != nil {
			return Report{}, fmt.Errorf("sim: %w", err)
		}
	}
	if opts.Strategy == nil {
		opts.Strategy = Random
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	workers := min(max(opts.Workers, 1), opts.Games)

	bar := pb.New(opts.Games)
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Quiet {
		out = io.Discard
	}
	bar.SetWriter(out)
	bar.Start()

	results := make([]*GameResult, opts.Games)
	jobs := make(chan int)

	wg := new(sync.WaitGroup)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				r := playGame(opts, opts.Seed+int64(i))
				results[i] = &r
				logger.Debug("game done", "seed", r.Seed, "moves", r.Moves, "max_tile", r.MaxTile, "lost", r.Lost)
				bar.Increment()
			}
		}()
	}

	var err error
feed:
	for i := range opts.Games {
		if ctx.Err() != nil {
			err = ctx.Err()
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	done := make([]GameResult, 0, opts.Games)
	for _, r := range results {
		if r != nil {
			done = append(done, *r)
		}
	}

	report := NewReport(done, used)
	logger.Info("simulation finished", "games", report.Games, "mean_moves", report.MeanMoves, "reached_2048", report.Reached2048, "elapsed", used)
	return report, err
}

// playGame runs one game to the end or to the move cap.
func playGame(opts Options, seed int64) GameResult {
	rng := rand.New(rand.NewSource(seed))
	g := puzzle.New(puzzle.WithRand(rng), puzzle.WithSpawnTable(opts.Spawn))

	res := GameResult{Seed: seed}
	for opts.MaxMoves == 0 || res.Moves < opts.MaxMoves {
		if puzzle.IsLost(g.Board()) {
			res.Lost = true
			break
		}
		if !g.Step(opts.Strategy(g.Board(), rng)) {
			// Strategies only return moving directions on a live board;
			// stop rather than spin if one does not.
			break
		}
		res.Moves++
		g.GenerateNewCell()
	}
	res.MaxTile = g.Board().MaxTile()
	return res
}

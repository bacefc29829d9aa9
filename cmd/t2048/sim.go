package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/sim"
)

var (
	flagSimGames      int
	flagSimStrategy   string
	flagSimMaxMoves   int
	flagSimWorkers    int
	flagSimQuiet      bool
	flagSimDifficulty string
	flagSimOrder      string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play games headlessly and print statistics",
	Long: `Plays many games with a fixed strategy and prints a summary table:
moves per game, the distribution of the highest tile and how often 2048
was reached. Game i uses seed --seed + i, so runs are reproducible.

Strategies:
  random - Pick uniformly among the moves that change the board
  corner - Take the first move of --order that changes the board
           (default down,left,right,up)

Examples:
  t2048 sim --games 1000
  t2048 sim --games 500 --strategy corner --difficulty hard
  t2048 sim --strategy corner --order left,down,up,right
  t2048 sim --seed 7 --max-moves 200 --quiet`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 100, "Number of games to play")
	simCmd.Flags().StringVar(&flagSimStrategy, "strategy", sim.StrategyRandom, "Move strategy: "+strings.Join(sim.StrategyNames(), ", "))
	simCmd.Flags().IntVar(&flagSimMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = play to the end)")
	simCmd.Flags().IntVar(&flagSimWorkers, "workers", runtime.NumCPU(), "Games played concurrently")
	simCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Hide the progress bar")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simCmd.Flags().StringVar(&flagSimOrder, "order", "", "Comma-separated direction preference for the corner strategy")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg := loadConfig(flagSimDifficulty)

	strategy, err := sim.ParseStrategy(flagSimStrategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSimOrder != "" {
		if !strings.EqualFold(flagSimStrategy, sim.StrategyCorner) {
			fmt.Fprintln(os.Stderr, "Error: --order only applies to --strategy corner")
			os.Exit(1)
		}
		order, orderErr := sim.ParseOrder(flagSimOrder)
		if orderErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", orderErr)
			os.Exit(1)
		}
		strategy = sim.Prefer(order)
	}
	spawn := cfg.SpawnTable()

	// Nothing draws over stderr here, so log there.
	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, runErr := sim.Run(ctx, sim.Options{
		Games:    flagSimGames,
		Seed:     flagSeed,
		Strategy: strategy,
		MaxMoves: flagSimMaxMoves,
		Workers:  flagSimWorkers,
		Spawn:    spawn,
		Quiet:    flagSimQuiet,
		Output:   os.Stderr,
		Logger:   logger,
	})
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	title := fmt.Sprintf("t2048 sim: %s, seed %d, %.0f%% fours", strings.ToLower(flagSimStrategy), flagSeed, spawn.Probability(4)*100)
	fmt.Print(report.Table(title))

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Interrupted after %d of %d games\n", report.Games, flagSimGames)
		os.Exit(1)
	}
}

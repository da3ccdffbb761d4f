package main

import (
	"flag"
	"fmt"
	"os"
	"quoridor/engine"
	"quoridor/experiments"
	"quoridor/game"
	"quoridor/meta"
	"quoridor/searcher"
	"quoridor/searcher/agent"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	goroutines int
	episodes   int
	duration   time.Duration
	cutoff     int
}

func main() {
	experiment := flag.String("experiment", "", "Experiment to run: throughput, strength or cutoff. Plays a single game if empty")
	output := flag.String("output", "experiments", "Directory for experiment results")
	goroutines := flag.Int("goroutines", meta.Goroutines, "Number of goroutines for parallel playouts")
	episodes := flag.Int("episodes", meta.Episodes, "Number of playouts per move")
	duration := flag.Duration("duration", 0, "Duration of playouts per move, overrides episodes")
	cutoff := flag.Int("cutoff", meta.Cutoff, "Rollout depth before evaluating, 0 for full playouts")
	budget := flag.Int("walls", game.DefaultWallBudget, "Walls per player")
	turns := flag.Int("turns", meta.MaxTurns, "Moves before the game is a draw")
	random := flag.Bool("random", false, "Play player 1 with a random agent")
	level := flag.String("level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	switch *experiment {
	case "":
		cfg := config{goroutines: *goroutines, episodes: *episodes, duration: *duration, cutoff: *cutoff}
		runGame(cfg, *random, *turns, *budget)
	case "throughput":
		err = experiments.RunThroughput(*output)
	case "strength":
		err = experiments.RunParallelizationToStrength(*output)
	case "cutoff":
		err = experiments.RunCutoff(*output)
	default:
		err = fmt.Errorf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

// runGame plays a single game between two search agents and logs its moves
func runGame(cfg config, random bool, turns, budget int) {
	opponent := agent.NewEvaluationAgent(createMCTS(cfg))
	if random {
		opponent = agent.NewRandomAgent(uint64(time.Now().UnixNano()))
	}
	agents := [game.NumPlayers]agent.Agent{agent.NewEvaluationAgent(createMCTS(cfg)), opponent}

	e := engine.LocalEngine(agents,
		engine.WithMaxTurns(turns),
		engine.WithStateOptions(game.WithWallBudget(budget)),
	)
	winner, gameMetric, moveMetrics := e.Run()

	for _, mm := range moveMetrics {
		log.Debug().Msgf("turn %d: player %d %s (%d episodes)", mm.Step, mm.Player, mm.Move, mm.Episodes)
	}
	log.Info().Msgf("winner: %d after %d moves in %s", winner, gameMetric.TotalMoves, gameMetric.Duration)
}

func createMCTS(cfg config) *searcher.MCTS {
	options := []searcher.Option{searcher.WithMetrics()}

	if cfg.duration > 0 {
		options = append(options, searcher.WithDuration(cfg.duration))
	} else {
		options = append(options, searcher.WithEpisodes(cfg.episodes))
	}
	if cfg.cutoff > 0 {
		options = append(options, searcher.WithCutoff(cfg.cutoff))
	}

	return searcher.NewMCTS(cfg.goroutines, options...)
}

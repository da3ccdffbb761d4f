package experiments

import (
	"fmt"
	"quoridor/engine"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"
	"quoridor/searcher/agent"

	"github.com/rs/zerolog/log"
)

// MatchUp pairs two agents. The starting player alternates between games.
type MatchUp [game.NumPlayers]metrics.AgentConfig

// Run plays games per match up and writes the agent configs, game records and
// move records as CSV files under dir/name.
func Run(dir, name string, configs []metrics.AgentConfig, matchUps []MatchUp, games int, options ...engine.Option) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	// Store experiment metadata
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			starting := i % game.NumPlayers
			winner, gameMetric, moveMetrics := runGame(matchUp, starting, options...)
			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     matchUp[0].ID,
				Agent2:     matchUp[1].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID.String(),
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %d", mi+1, len(matchUps), i+1, games, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment results
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(matchUp MatchUp, starting int, options ...engine.Option) (int, metrics.GameMetric, []metrics.MoveMetric) {
	agents := [game.NumPlayers]agent.Agent{
		agent.NewEvaluationAgent(createMCTS(matchUp[0])),
		agent.NewEvaluationAgent(createMCTS(matchUp[1])),
	}
	options = append(options, engine.WithStateOptions(game.WithStartingPlayer(starting)))
	e := engine.LocalEngine(agents, options...)
	return e.Run()
}

func createMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}

package engine

import (
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"
	"quoridor/searcher/agent"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedAgent plays its moves in order
type scriptedAgent struct {
	moves []game.Move
}

func (a *scriptedAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	move := a.moves[0]
	a.moves = a.moves[1:]
	return move, metrics.SearchMetric{Episodes: 1}
}

func TestLocalEngine(t *testing.T) {
	t.Run("scripted race to the goal", func(t *testing.T) {
		north := make([]game.Move, game.Size-1)
		for i := range north {
			north[i] = game.Step(game.North)
		}
		// Player 1 walls twice then steps sideways, never catching up
		p1 := []game.Move{
			game.PlaceWall(game.NewWall(0, 0, game.Horizontal)),
			game.PlaceWall(game.NewWall(6, 0, game.Horizontal)),
		}
		for i := 0; i < game.Size; i++ {
			if i%2 == 0 {
				p1 = append(p1, game.Step(game.West))
			} else {
				p1 = append(p1, game.Step(game.East))
			}
		}

		e := LocalEngine([game.NumPlayers]agent.Agent{&scriptedAgent{north}, &scriptedAgent{p1}})
		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, 0, winner)
		require.Equal(t, 0, gameMetric.Winner)
		require.Equal(t, 0, gameMetric.StartingPlayer)
		require.Equal(t, 2*(game.Size-1)-1, gameMetric.TotalMoves)
		require.Equal(t, [2]int{0, 2}, gameMetric.WallsPlaced)
		require.NotZero(t, gameMetric.ID)
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, "step N", moveMetrics[0].Move)
		require.Equal(t, 1, moveMetrics[1].Player)
		require.Equal(t, 2, moveMetrics[1].Step)
		require.Equal(t, 1, moveMetrics[1].Episodes)
	})

	t.Run("illegal agent move is a programming error", func(t *testing.T) {
		e := LocalEngine([game.NumPlayers]agent.Agent{
			&scriptedAgent{[]game.Move{game.Step(game.South)}},
			agent.NewRandomAgent(1),
		})
		require.Panics(t, func() { e.Run() })
	})

	t.Run("turn limit ends the game without a winner", func(t *testing.T) {
		e := LocalEngine(
			[game.NumPlayers]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)},
			WithMaxTurns(6),
			WithStateOptions(game.WithWallBudget(0)),
		)
		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.NoPlayer, winner, "Random pawns cannot cross the board in six moves")
		require.Equal(t, 6, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 6)
		require.Equal(t, [2]int{0, 0}, gameMetric.WallsPlaced)
	})

	t.Run("starting player is configurable", func(t *testing.T) {
		e := LocalEngine(
			[game.NumPlayers]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)},
			WithMaxTurns(1),
			WithStateOptions(game.WithStartingPlayer(1)),
		)
		_, gameMetric, moveMetrics := e.Run()

		require.Equal(t, 1, gameMetric.StartingPlayer)
		require.Equal(t, 1, moveMetrics[0].Player)
	})

	t.Run("random agents finish with legal play", func(t *testing.T) {
		e := LocalEngine([game.NumPlayers]agent.Agent{agent.NewRandomAgent(3), agent.NewRandomAgent(4)})
		_, gameMetric, moveMetrics := e.Run()

		require.LessOrEqual(t, gameMetric.TotalMoves, 300)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.LessOrEqual(t, gameMetric.WallsPlaced[0], game.DefaultWallBudget)
		require.LessOrEqual(t, gameMetric.WallsPlaced[1], game.DefaultWallBudget)
	})

	t.Run("search agent beats a random agent to a near goal", func(t *testing.T) {
		mcts := searcher.NewMCTS(2, searcher.WithEpisodes(300), searcher.WithCutoff(2), searcher.WithSeed(1))
		e := LocalEngine(
			[game.NumPlayers]agent.Agent{agent.NewEvaluationAgent(mcts), agent.NewRandomAgent(5)},
			WithMaxTurns(1),
			WithStateOptions(game.WithPawns(game.Position{X: 4, Y: 7}, game.Position{X: 0, Y: 4})),
		)
		winner, _, _ := e.Run()

		require.Equal(t, 0, winner)
	})

	t.Run("missing agent", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine([game.NumPlayers]agent.Agent{agent.NewRandomAgent(1), nil}) })
	})
}

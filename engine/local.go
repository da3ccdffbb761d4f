package engine

import (
	"fmt"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/gamemaster"
	"quoridor/meta"
	"quoridor/searcher/agent"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

// WithMaxTurns ends the game as a draw after turns moves
func WithMaxTurns(turns int) Option {
	return func(e *localEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithStateOptions sets up the initial state, e.g. the starting player or wall budget
func WithStateOptions(options ...game.Option) Option {
	return func(e *localEngine) {
		e.stateOptions = append(e.stateOptions, options...)
	}
}

type localEngine struct {
	agents       [game.NumPlayers]agent.Agent
	maxTurns     int
	stateOptions []game.Option
}

// LocalEngine plays agents[i] as player i in this process
func LocalEngine(agents [game.NumPlayers]agent.Agent, options ...Option) Engine {
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("missing agent for player %d", i))
		}
	}
	e := &localEngine{
		agents:   agents,
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found or the turn limit is reached.
func (e *localEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	master := gamemaster.NewLocalMaster(e.maxTurns, e.stateOptions...)
	state, getUpdate := master.Init()

	gameMetric := metrics.GameMetric{
		ID:             uuid.New(),
		StartingPlayer: state.Player(),
		Winner:         game.NoPlayer,
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("game %s: player %d is starting", gameMetric.ID, gameMetric.StartingPlayer)

	for turn := 1; turn <= e.maxTurns && !state.IsTerminal(); turn++ {
		player := state.Player()
		if len(state.LegalMoves()) == 0 {
			log.Warn().Msgf("game %s: player %d has no legal move", gameMetric.ID, player)
			break
		}

		move, searchMetric := e.agents[player].FindMove(state)
		if err := master.Play(move); err != nil {
			panic(fmt.Sprintf("agent %d chose %s: %v", player, move, err))
		}

		_, next, ok := getUpdate()
		if !ok {
			panic("game master did not report the played move")
		}
		state = next

		if move.IsWall() {
			gameMetric.WallsPlaced[player]++
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		gameMetric.TotalMoves = turn
		log.Debug().Msgf("game %s turn %d: player %d plays %s", gameMetric.ID, turn, player, move)
	}

	gameMetric.Winner = state.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if gameMetric.Winner == game.NoPlayer {
		log.Info().Msgf("game %s: stopped after %d moves without a winner", gameMetric.ID, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("game %s: player %d won after %d moves", gameMetric.ID, gameMetric.Winner, gameMetric.TotalMoves)
	}

	return gameMetric.Winner, gameMetric, moveMetrics
}

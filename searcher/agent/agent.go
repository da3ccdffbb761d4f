package agent

import (
	"quoridor/experiments/metrics"
	"quoridor/game"
)

type Agent interface {
	// FindMove returns a move for the player to move and performance metrics (if collected) from the search
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}

package agent

import (
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state)
	return findMax(policy), metric
}

// findMax picks the most visited move, breaking ties by move order so the
// choice does not depend on map iteration.
func findMax(policy map[game.Move]float64) game.Move {
	var maxMove game.Move
	maxVisit := -1.0
	for move, visit := range policy {
		if visit > maxVisit || (visit == maxVisit && move.Compare(maxMove) < 0) {
			maxVisit = visit
			maxMove = move
		}
	}
	return maxMove
}

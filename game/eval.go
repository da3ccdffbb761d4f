package game

// Distance used for a player without a path, so an unreachable goal always scores worst
const unreachableDistance = 2 * NumCells

// EvaluatePathDifference compares both players' shortest paths to their goal rows
// to produce a score between -1 and 1 from the current player's perspective.
// Remaining walls count as a small bonus.
func EvaluatePathDifference(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if winner := gs.Winner(); winner != NoPlayer {
		if winner == gs.CurrentPlayer {
			return 1
		}
		return -1
	}

	current := gs.CurrentPlayer
	opponent := Opponent(current)

	// Shorter path is better, so the opponent's distance is the "value"
	pathScore := normalize(float64(gs.distance(opponent)), float64(gs.distance(current)))
	wallScore := normalize(float64(gs.WallsRemaining[current]), float64(gs.WallsRemaining[opponent]))

	return 0.9*pathScore + 0.1*wallScore
}

func (gs *GameState) distance(player int) int {
	d, ok := gs.ShortestPathLength(player)
	if !ok {
		return unreachableDistance
	}
	return d
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}

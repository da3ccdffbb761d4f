package searcher

import "math"

// uct scores a child from its parent's perspective.
// UCT = q/n + sqrt(c^2*ln(N)/n), where c2LnN is precomputed by the parent.
func uct(rewards float64, visits float64, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/visits + math.Sqrt(c2LnN/visits)
}

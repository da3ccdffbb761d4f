package experiments

import (
	"quoridor/experiments/metrics"
	"time"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 10 * time.Millisecond
	cutoff     = 20
)

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 1, Duration: TimeBudget, Cutoff: cutoff},
	{ID: 2, Goroutines: 4, Duration: TimeBudget, Cutoff: cutoff},
	{ID: 3, Goroutines: 8, Duration: TimeBudget, Cutoff: cutoff},
	{ID: 4, Goroutines: 16, Duration: TimeBudget, Cutoff: cutoff},
	{ID: 5, Goroutines: 32, Duration: TimeBudget, Cutoff: cutoff},
}

// RunThroughput measures episodes per move as goroutines grow. Each match up
// uses the same config for both players for the same playing strength and
// similar game length.
func RunThroughput(dir string) error {
	matchUps := []MatchUp{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, MatchUp{config, config})
	}
	return Run(dir, "parallelization_to_throughput", parallelConfigs, matchUps, NumGames)
}

// RunParallelizationToStrength pairs each agent against the sequential baseline
func RunParallelizationToStrength(dir string) error {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 1, Duration: TimeBudget, Cutoff: cutoff}
	matchUps := []MatchUp{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, MatchUp{baseline, config})
	}
	return Run(dir, "parallelization_to_strength", append(parallelConfigs, baseline), matchUps, NumGames)
}

// RunCutoff pairs full playouts against rollouts cut off at increasing depths
func RunCutoff(dir string) error {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 8, Duration: TimeBudget} // Without cutoff (full playout)
	cutoffConfigs := []metrics.AgentConfig{
		{ID: 1, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 5},
		{ID: 2, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 10},
		{ID: 3, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 20},
		{ID: 4, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 40},
	}

	matchUps := []MatchUp{}
	for _, config := range cutoffConfigs {
		matchUps = append(matchUps, MatchUp{baseline, config})
	}
	return Run(dir, "cutoff", append(cutoffConfigs, baseline), matchUps, NumGames)
}

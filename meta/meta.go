// Package meta holds the default search and game settings.
package meta

// Goroutines defines the number of goroutines to use per search.
const Goroutines = 8

// Episodes defines the number of episodes for MCTS.
const Episodes = 150

// Cutoff defines the rollout depth before the evaluation function is used.
const Cutoff = 20

// MaxTurns defines the number of moves after which a game is a draw.
const MaxTurns = 300

package game

// State is what a search needs from a game. Play must leave the receiver
// unchanged so that many branches can be explored from one ancestor.
type State interface {
	Player() int
	LegalMoves() []Move
	Play(Move) State
	IsTerminal() bool
	Winner() int
	Hash() StateHash
}

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64

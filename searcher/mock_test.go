package searcher

import "quoridor/game"

type mockState struct {
	player int
	winner int
	moves  []game.Move
	played []game.Move
}

func (m mockState) Player() int {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	return mockState{
		player: game.Opponent(m.player),
		winner: game.NoPlayer,
		played: append(append([]game.Move{}, m.played...), move),
	}
}

func (m mockState) IsTerminal() bool {
	return len(m.moves) == 0
}

func (m mockState) Winner() int {
	return m.winner
}

func (m mockState) Hash() game.StateHash {
	return game.StateHash(len(m.played))
}

func steps(dirs ...game.Direction) []game.Move {
	moves := make([]game.Move, len(dirs))
	for i, dir := range dirs {
		moves[i] = game.Step(dir)
	}
	return moves
}

package game

// LegalMoves returns all legal moves for the current player: pawn moves first,
// then wall placements in anchor order. A finished game has no legal moves.
func (gs *GameState) LegalMoves() []Move {
	if gs.IsTerminal() {
		return nil
	}
	moves := gs.pawnMoves()
	return append(moves, gs.wallMoves()...)
}

// PawnMoves returns only the legal steps and jumps of the current player.
func (gs *GameState) PawnMoves() []Move {
	if gs.IsTerminal() {
		return nil
	}
	return gs.pawnMoves()
}

func (gs *GameState) pawnMoves() []Move {
	moves := make([]Move, 0, 5)
	me := gs.Pawns[gs.CurrentPlayer].Position
	opponent := gs.Pawns[Opponent(gs.CurrentPlayer)].Position

	for _, d := range Directions {
		next := me.Step(d)
		if gs.grid.Blocked(me, next) {
			continue
		}
		if next != opponent {
			moves = append(moves, Step(d))
			continue
		}

		// Opponent directly ahead: jump straight over if the edge behind is open
		if !gs.grid.BlockedDir(opponent, d) {
			moves = append(moves, Jump(d))
			continue
		}
		// Wall or board edge behind the opponent: sidestep diagonally
		for _, side := range d.Perpendicular() {
			if !gs.grid.BlockedDir(opponent, side) {
				moves = append(moves, DiagonalJump(d, side))
			}
		}
	}
	return moves
}

func (gs *GameState) wallMoves() []Move {
	if gs.WallsRemaining[gs.CurrentPlayer] <= 0 {
		return nil
	}
	var moves []Move
	for y := 0; y <= maxAnchor; y++ {
		for x := 0; x <= maxAnchor; x++ {
			for _, o := range Orientations {
				w := NewWall(x, y, o)
				if gs.CheckWall(w) == nil {
					moves = append(moves, PlaceWall(w))
				}
			}
		}
	}
	return moves
}

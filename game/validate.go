package game

import (
	"errors"
	"fmt"
)

// Reasons a wall placement is rejected. A rejected placement never changes the state.
var (
	ErrNoWallsRemaining = errors.New("no walls remaining")
	ErrOutOfBounds      = errors.New("wall out of bounds")
	ErrOverlaps         = errors.New("wall overlaps an existing wall")
	ErrCrosses          = errors.New("wall crosses an existing wall")
	ErrBlocksPath       = errors.New("wall blocks a player's path to goal")
)

// PlaceWall validates w for the current player and, if legal, places it and
// spends one wall from the player's budget.
func (gs *GameState) PlaceWall(w Wall) error {
	if err := gs.CheckWall(w); err != nil {
		return fmt.Errorf("player %d cannot place %s: %w", gs.CurrentPlayer, w, err)
	}
	gs.grid.set(w)
	gs.Walls = append(gs.Walls, w)
	gs.WallsRemaining[gs.CurrentPlayer]--
	return nil
}

// CheckWall reports whether the current player may place w, without changing the state.
// Checks run in order and the first failure is returned.
func (gs *GameState) CheckWall(w Wall) error {
	if gs.WallsRemaining[gs.CurrentPlayer] <= 0 {
		return ErrNoWallsRemaining
	}
	if !w.InBounds() {
		return ErrOutOfBounds
	}
	for _, placed := range gs.Walls {
		if w.Overlaps(placed) {
			return ErrOverlaps
		}
	}
	for _, placed := range gs.Walls {
		if w.Crosses(placed) {
			return ErrCrosses
		}
	}

	// Tentative placement, always rolled back
	gs.grid.set(w)
	open := gs.HasPath(0) && gs.HasPath(1)
	gs.grid.clear(w)
	if !open {
		return ErrBlocksPath
	}
	return nil
}

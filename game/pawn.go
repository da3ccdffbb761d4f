package game

const NumPlayers = 2

// NoPlayer is returned by Winner while the game is in progress.
const NoPlayer = -1

// Pawn is a player's token on the board.
type Pawn struct {
	Position
}

// StartPosition is the middle of the player's baseline.
func StartPosition(player int) Position {
	if player == 0 {
		return Position{X: Size / 2, Y: 0}
	}
	return Position{X: Size / 2, Y: Size - 1}
}

// GoalRow is the row opposite the player's baseline.
func GoalRow(player int) int {
	if player == 0 {
		return Size - 1
	}
	return 0
}

func Opponent(player int) int {
	return 1 - player
}

func (p Pawn) AtGoal(player int) bool {
	return p.Y == GoalRow(player)
}

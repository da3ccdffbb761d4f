package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"golang.org/x/exp/slices"
)

// DefaultWallBudget is the number of walls each player may place in a standard game.
const DefaultWallBudget = 10

type StateHash uint64

// GameState is the full position: both pawns, every placed wall, the remaining
// wall budgets and whose turn it is. The zero value is not usable; call NewGameState.
type GameState struct {
	Pawns          [NumPlayers]Pawn // Indexed by player
	Walls          []Wall           // Placed walls in placement order
	WallsRemaining [NumPlayers]int  // Walls each player may still place
	CurrentPlayer  int              // The player to move
	grid           Grid             // Wall footprints in slot space, derived from Walls
}

type Option func(gs *GameState)

// WithWallBudget sets the number of walls each player starts with.
func WithWallBudget(walls int) Option {
	return func(gs *GameState) {
		if walls >= 0 {
			gs.WallsRemaining = [NumPlayers]int{walls, walls}
		}
	}
}

// WithStartingPlayer gives the first move to player
func WithStartingPlayer(player int) Option {
	return func(gs *GameState) {
		if player >= 0 && player < NumPlayers {
			gs.CurrentPlayer = player
		}
	}
}

// WithPawns places the pawns somewhere other than their baselines.
func WithPawns(p0, p1 Position) Option {
	return func(gs *GameState) {
		gs.Pawns = [NumPlayers]Pawn{{Position: p0}, {Position: p1}}
	}
}

// WithWalls starts the game with walls already on the board. Walls that are
// illegal for the position so far are skipped. Budgets are not charged.
func WithWalls(walls ...Wall) Option {
	return func(gs *GameState) {
		for _, w := range walls {
			gs.addWall(w)
		}
	}
}

// NewGameState returns a game at its start: pawns on opposite baselines, full
// wall budgets and player 0 to move.
func NewGameState(options ...Option) *GameState {
	gs := &GameState{
		Pawns: [NumPlayers]Pawn{
			{Position: StartPosition(0)},
			{Position: StartPosition(1)},
		},
		WallsRemaining: [NumPlayers]int{DefaultWallBudget, DefaultWallBudget},
		CurrentPlayer:  0,
	}
	for _, option := range options {
		option(gs)
	}
	return gs
}

// addWall places w ignoring the budget, if it is otherwise legal.
func (gs *GameState) addWall(w Wall) bool {
	budget := gs.WallsRemaining[gs.CurrentPlayer]
	gs.WallsRemaining[gs.CurrentPlayer] = 1
	err := gs.PlaceWall(w)
	gs.WallsRemaining[gs.CurrentPlayer] = budget
	return err == nil
}

// Copy returns an independent deep copy of the state.
func (gs *GameState) Copy() *GameState {
	walls := make([]Wall, len(gs.Walls))
	copy(walls, gs.Walls)

	return &GameState{
		Pawns:          gs.Pawns,
		Walls:          walls,
		WallsRemaining: gs.WallsRemaining,
		CurrentPlayer:  gs.CurrentPlayer,
		grid:           gs.grid, // Array value, copied
	}
}

// Apply plays m in place. Pawn moves are trusted to come from LegalMoves and
// always pass the turn. A wall move passes the turn only if the wall was placed.
func (gs *GameState) Apply(m Move) {
	if m.Kind == WallMove {
		if err := gs.PlaceWall(m.Wall); err != nil {
			return
		}
	} else {
		pawn := &gs.Pawns[gs.CurrentPlayer]
		pawn.Position = pawn.Add(m.Offset())
	}
	gs.CurrentPlayer = Opponent(gs.CurrentPlayer)
}

// Play returns the state after m, leaving gs untouched.
func (gs *GameState) Play(m Move) State {
	next := gs.Copy()
	next.Apply(m)
	return next
}

// Player returns the index of the player to move.
func (gs *GameState) Player() int {
	return gs.CurrentPlayer
}

func (gs *GameState) IsTerminal() bool {
	return gs.Winner() != NoPlayer
}

// Winner returns the player whose pawn stands on its goal row, or NoPlayer.
func (gs *GameState) Winner() int {
	for player := 0; player < NumPlayers; player++ {
		if gs.Pawns[player].AtGoal(player) {
			return player
		}
	}
	return NoPlayer
}

// Hash covers the player to move, both pawns and the set of placed walls.
// Placement order does not matter.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	for _, pawn := range gs.Pawns {
		binary.Write(hasher, binary.LittleEndian, int64(pawn.X))
		binary.Write(hasher, binary.LittleEndian, int64(pawn.Y))
	}
	for _, w := range gs.sortedWalls() {
		binary.Write(hasher, binary.LittleEndian, int64(w.Anchor.X))
		binary.Write(hasher, binary.LittleEndian, int64(w.Anchor.Y))
		binary.Write(hasher, binary.LittleEndian, int64(w.Orientation))
	}

	return StateHash(hasher.Sum64())
}

// Equal compares content: player to move, pawns, budgets and the set of placed walls.
func (gs *GameState) Equal(other *GameState) bool {
	if other == nil {
		return false
	}
	if gs.CurrentPlayer != other.CurrentPlayer || gs.Pawns != other.Pawns || gs.WallsRemaining != other.WallsRemaining {
		return false
	}
	return slices.Equal(gs.sortedWalls(), other.sortedWalls())
}

func (gs *GameState) sortedWalls() []Wall {
	walls := slices.Clone(gs.Walls)
	slices.SortFunc(walls, func(a, b Wall) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		default:
			return 0
		}
	})
	return walls
}

// Grid exposes the wall terrain for read-only queries.
func (gs *GameState) Grid() *Grid {
	grid := gs.grid
	return &grid
}

// String draws the board top row first: A and B are the pawns of players 0
// and 1, '-' and '|' are wall segments, '+' wall junctions.
func (gs *GameState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "to move: %d  walls: %d/%d\n", gs.CurrentPlayer, gs.WallsRemaining[0], gs.WallsRemaining[1])
	for row := SlotSize - 1; row >= 0; row-- {
		for col := 0; col < SlotSize; col++ {
			s := slot{col: col, row: row}
			switch {
			case col%2 == 0 && row%2 == 0:
				b.WriteByte(gs.cellRune(Position{X: col / 2, Y: row / 2}))
			case !gs.grid.occupied(s):
				b.WriteByte(' ')
			case col%2 == 1 && row%2 == 1:
				b.WriteByte('+')
			case row%2 == 1:
				b.WriteByte('-')
			default:
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (gs *GameState) cellRune(p Position) byte {
	switch p {
	case gs.Pawns[0].Position:
		return 'A'
	case gs.Pawns[1].Position:
		return 'B'
	default:
		return '.'
	}
}

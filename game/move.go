package game

import "fmt"

type MoveKind int8

const (
	StepMove         MoveKind = iota // One cell in Direction
	JumpMove                         // Straight over the adjacent opponent
	DiagonalJumpMove                 // Toward the opponent in Direction, then one cell to Side
	WallMove                         // Place Wall
)

// Move is a comparable value: pawn moves carry their direction(s), wall moves
// the wall to place. Unused fields stay zero so equal moves compare equal.
type Move struct {
	Kind MoveKind
	Dir  Direction
	Side Direction
	Wall Wall
}

func Step(d Direction) Move {
	return Move{Kind: StepMove, Dir: d}
}

func Jump(d Direction) Move {
	return Move{Kind: JumpMove, Dir: d}
}

func DiagonalJump(d, side Direction) Move {
	return Move{Kind: DiagonalJumpMove, Dir: d, Side: side}
}

func PlaceWall(w Wall) Move {
	return Move{Kind: WallMove, Wall: w}
}

func (m Move) IsWall() bool {
	return m.Kind == WallMove
}

// Offset is the fixed displacement a pawn move applies to the active pawn.
func (m Move) Offset() Position {
	switch m.Kind {
	case StepMove:
		return m.Dir.Offset()
	case JumpMove:
		o := m.Dir.Offset()
		return o.Add(o)
	case DiagonalJumpMove:
		return m.Dir.Offset().Add(m.Side.Offset())
	default:
		return Position{}
	}
}

func (m Move) String() string {
	switch m.Kind {
	case StepMove:
		return fmt.Sprintf("step %s", m.Dir)
	case JumpMove:
		return fmt.Sprintf("jump %s", m.Dir)
	case DiagonalJumpMove:
		return fmt.Sprintf("jump %s%s", m.Dir, m.Side)
	case WallMove:
		return fmt.Sprintf("wall %s", m.Wall)
	default:
		return "unknown"
	}
}

// Compare orders moves by kind, then directions, then wall.
func (m Move) Compare(other Move) int {
	switch {
	case m.Kind != other.Kind:
		return int(m.Kind) - int(other.Kind)
	case m.Dir != other.Dir:
		return int(m.Dir) - int(other.Dir)
	case m.Side != other.Side:
		return int(m.Side) - int(other.Side)
	case m.Wall.less(other.Wall):
		return -1
	case other.Wall.less(m.Wall):
		return 1
	default:
		return 0
	}
}

package game

import "fmt"

type Orientation int8

const (
	Horizontal Orientation = iota // Blocks movement between two rows
	Vertical                      // Blocks movement between two columns
)

var Orientations = [2]Orientation{Horizontal, Vertical}

func (o Orientation) String() string {
	if o == Horizontal {
		return "h"
	}
	return "v"
}

// Wall is a two-cell-long obstacle. Anchor is the corner point shared by cells
// (x,y), (x+1,y), (x,y+1) and (x+1,y+1); a horizontal wall separates rows y and
// y+1 over columns x and x+1, a vertical wall separates columns x and x+1 over
// rows y and y+1.
type Wall struct {
	Anchor      Position
	Orientation Orientation
}

func NewWall(x, y int, o Orientation) Wall {
	return Wall{Anchor: Position{X: x, Y: y}, Orientation: o}
}

// InBounds reports whether the whole footprint lies on the board.
func (w Wall) InBounds() bool {
	a := w.Anchor
	return a.X >= 0 && a.X <= maxAnchor && a.Y >= 0 && a.Y <= maxAnchor
}

// Slots returns the footprint in slot space: edge, junction, edge.
func (w Wall) Slots() [3]slot {
	col, row := 2*w.Anchor.X+1, 2*w.Anchor.Y+1
	if w.Orientation == Horizontal {
		return [3]slot{{col - 1, row}, {col, row}, {col + 1, row}}
	}
	return [3]slot{{col, row - 1}, {col, row}, {col, row + 1}}
}

// Overlaps reports whether two walls of the same orientation share a segment.
func (w Wall) Overlaps(other Wall) bool {
	if w.Orientation != other.Orientation {
		return false
	}
	if w.Orientation == Horizontal {
		return w.Anchor.Y == other.Anchor.Y && abs(w.Anchor.X-other.Anchor.X) <= 1
	}
	return w.Anchor.X == other.Anchor.X && abs(w.Anchor.Y-other.Anchor.Y) <= 1
}

// Crosses reports whether two perpendicular walls intersect at their midpoint:
// the horizontal span covers the vertical wall's column line and the vertical
// span covers the horizontal wall's row line, which only happens when both
// walls share an anchor.
func (w Wall) Crosses(other Wall) bool {
	if w.Orientation == other.Orientation {
		return false
	}
	return w.Anchor == other.Anchor
}

func (w Wall) String() string {
	return fmt.Sprintf("%d%d%s", w.Anchor.X, w.Anchor.Y, w.Orientation)
}

// less orders walls by anchor row, column, then orientation.
func (w Wall) less(other Wall) bool {
	if w.Anchor.Y != other.Anchor.Y {
		return w.Anchor.Y < other.Anchor.Y
	}
	if w.Anchor.X != other.Anchor.X {
		return w.Anchor.X < other.Anchor.X
	}
	return w.Orientation < other.Orientation
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package game

const (
	Size      = 9          // Board side in cells
	SlotSize  = 2*Size - 1 // Board side in slots (cells, edges and wall junctions)
	NumCells  = Size * Size
	numSlots  = SlotSize * SlotSize
	maxAnchor = Size - 2 // Largest wall anchor coordinate on either axis
)

// Position is a cell coordinate: X is the column, Y the row. Row 0 is player 0's baseline.
type Position struct {
	X int
	Y int
}

type Direction int8

const (
	North Direction = iota // +Y
	South                  // -Y
	East                   // +X
	West                   // -X
)

// Directions in the order moves are generated
var Directions = [4]Direction{North, South, East, West}

var directionOffsets = [4]Position{
	North: {X: 0, Y: 1},
	South: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
}

func (d Direction) Offset() Position {
	return directionOffsets[d]
}

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Perpendicular returns the two directions at right angles to d
func (d Direction) Perpendicular() [2]Direction {
	if d == North || d == South {
		return [2]Direction{East, West}
	}
	return [2]Direction{North, South}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return "?"
	}
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Step returns the neighboring cell in direction d (which may be off the board).
func (p Position) Step(d Direction) Position {
	return p.Add(d.Offset())
}

// InBounds reports whether p is a cell on the board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// index maps an in-bounds cell to 0..NumCells-1
func (p Position) index() int {
	return p.Y*Size + p.X
}

func positionOf(index int) Position {
	return Position{X: index % Size, Y: index / Size}
}

// slot is a coordinate in the slot grid. Cells sit on even/even slots, wall
// junctions on odd/odd slots and edges between adjacent cells on the mixed ones.
type slot struct {
	col int
	row int
}

func cellSlot(p Position) slot {
	return slot{col: 2 * p.X, row: 2 * p.Y}
}

// edgeSlot returns the slot between two orthogonally adjacent cells.
func edgeSlot(a, b Position) slot {
	return slot{col: a.X + b.X, row: a.Y + b.Y}
}

func (s slot) inBounds() bool {
	return s.col >= 0 && s.col < SlotSize && s.row >= 0 && s.row < SlotSize
}

func (s slot) index() int {
	return s.row*SlotSize + s.col
}

// Grid records which edge and junction slots are covered by walls. It is a
// plain value: copying a Grid yields an independent board.
type Grid struct {
	slots [numSlots]bool
}

// Blocked reports whether a wall lies between the adjacent cells a and b.
// Moving off the board counts as blocked.
func (g *Grid) Blocked(a, b Position) bool {
	if !a.InBounds() || !b.InBounds() {
		return true
	}
	return g.slots[edgeSlot(a, b).index()]
}

// BlockedDir reports whether the edge leaving p in direction d is closed.
func (g *Grid) BlockedDir(p Position, d Direction) bool {
	return g.Blocked(p, p.Step(d))
}

func (g *Grid) occupied(s slot) bool {
	return g.slots[s.index()]
}

func (g *Grid) set(w Wall) {
	for _, s := range w.Slots() {
		g.slots[s.index()] = true
	}
}

func (g *Grid) clear(w Wall) {
	for _, s := range w.Slots() {
		g.slots[s.index()] = false
	}
}

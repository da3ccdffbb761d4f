package game

import "container/heap"

// HasPath reports whether the player's pawn can still reach its goal row.
// Only walls are obstacles: pawns never make a path unreachable.
func (gs *GameState) HasPath(player int) bool {
	return gs.grid.reachesRow(gs.Pawns[player].Position, GoalRow(player))
}

// Just BFS, stops at the first goal-row cell
func (g *Grid) reachesRow(start Position, goalRow int) bool {
	if start.Y == goalRow {
		return true
	}
	var visited [NumCells]bool
	queue := make([]Position, 0, NumCells)
	queue = append(queue, start)
	visited[start.index()] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range Directions {
			next := current.Step(d)
			if g.Blocked(current, next) || visited[next.index()] {
				continue
			}
			if next.Y == goalRow {
				return true
			}
			visited[next.index()] = true
			queue = append(queue, next)
		}
	}
	return false
}

// ShortestPathLength returns the least number of pawn steps from the player's
// cell to its goal row over the wall terrain. ok is false when the goal row is
// unreachable.
func (gs *GameState) ShortestPathLength(player int) (distance int, ok bool) {
	path := gs.ShortestPath(player)
	if path == nil {
		return 0, false
	}
	return len(path) - 1, true
}

// ShortestPath returns one shortest route, start and goal cell included, or nil.
func (gs *GameState) ShortestPath(player int) []Position {
	return gs.grid.shortestPath(gs.Pawns[player].Position, GoalRow(player))
}

// shortestPath is A* with the row distance to the goal as heuristic. The
// heuristic is consistent (every step changes the row by at most one), so the
// first goal cell popped is optimal.
func (g *Grid) shortestPath(start Position, goalRow int) []Position {
	var (
		cost   [NumCells]int
		parent [NumCells]int
		closed [NumCells]bool
	)
	for i := range cost {
		cost[i] = -1
		parent[i] = -1
	}

	open := &frontier{}
	cost[start.index()] = 0
	heap.Push(open, frontierItem{cell: start, priority: abs(goalRow - start.Y)})

	for open.Len() > 0 {
		item := heap.Pop(open).(frontierItem)
		current := item.cell
		ci := current.index()
		if closed[ci] {
			continue
		}
		closed[ci] = true

		if current.Y == goalRow {
			return unwind(parent[:], ci)
		}

		for _, d := range Directions {
			next := current.Step(d)
			if g.Blocked(current, next) {
				continue
			}
			ni := next.index()
			if closed[ni] {
				continue
			}
			c := cost[ci] + 1
			if cost[ni] >= 0 && cost[ni] <= c {
				continue
			}
			cost[ni] = c
			parent[ni] = ci
			heap.Push(open, frontierItem{cell: next, priority: c + abs(goalRow-next.Y), steps: c})
		}
	}
	return nil
}

func unwind(parent []int, last int) []Position {
	path := []Position{}
	for i := last; i >= 0; i = parent[i] {
		path = append(path, positionOf(i))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

type frontierItem struct {
	cell     Position
	priority int // steps so far plus remaining row distance
	steps    int
}

// frontier is a min-heap on priority; ties prefer deeper cells.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].steps > f[j].steps
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

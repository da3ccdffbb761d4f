package searcher

import (
	"math"
	"quoridor/game"
	"sync"
)

// decision is a tree node for a state where a player picks a move.
// Rewards are kept from the perspective of the player whose move led to
// the node, so a parent always maximizes over its children.
type decision struct {
	sync.RWMutex
	parent     *decision
	player     int // Player who moved into this node, game.NoPlayer for the root
	unexplored []game.Move
	explored   []game.Move
	children   []*decision
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, player int, state game.State) *decision {
	moves := state.LegalMoves()
	return &decision{
		parent:     parent,
		player:     player,
		unexplored: moves,
		explored:   make([]game.Move, 0, len(moves)),
		children:   make([]*decision, 0, len(moves)),
	}
}

// SelectOrExpand descends one level. It returns the selected child and its
// state with selected set, or a newly added child. A terminal node returns
// itself and the unchanged state.
func (d *decision) SelectOrExpand(state game.State) (*decision, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) > 0 { // Expandable node
		move := d.unexplored[0]
		d.unexplored = d.unexplored[1:]
		next := state.Play(move)
		child := newDecision(d, state.Player(), next)
		d.explored = append(d.explored, move)
		d.children = append(d.children, child)
		child.ApplyLoss()
		return child, next, false
	}

	if len(d.children) == 0 { // Terminal node
		return d, state, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	child.ApplyLoss()
	return child, state.Play(d.explored[ith]), true
}

func (d *decision) pickChild() int {
	visits := 0.0
	for _, child := range d.children {
		visits += child.Visits()
	}
	normalizer := CSquared * math.Log(math.Max(visits, 1))

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.Score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// ApplyLoss records a virtual loss so concurrent episodes spread out
func (d *decision) ApplyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) Score(normalizer float64) float64 {
	d.RLock()
	defer d.RUnlock()

	return uct(d.rewards, d.visits, normalizer)
}

// Backup records an episode outcome, given as a score from the perspective
// of player, and returns the parent.
func (d *decision) Backup(player int, score float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	if d.player == player {
		d.rewards += score
	} else {
		d.rewards -= score
	}
	d.visits++

	return d.parent
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) Visits() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// Policy maps every explored move to its visit count
func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	policy := make(map[game.Move]float64, len(d.children))
	for i, child := range d.children {
		policy[d.explored[i]] = child.Visits()
	}
	return policy
}

package gamemaster

import (
	"errors"
	"fmt"
	"quoridor/game"
	"quoridor/meta"
	"quoridor/utils"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

// UpdateGetter returns the next played move and the state it led to without
// blocking. ok is false when no update is pending or the game is over.
type UpdateGetter func() (move game.Move, state game.State, ok bool)

type Master interface {
	Init() (game.State, UpdateGetter)
	Play(game.Move) error
}

type update struct {
	move  game.Move
	state *game.GameState
}

type localMaster struct {
	sync.Mutex
	options  []game.Option
	maxTurns int
	turns    int
	state    *game.GameState
	updateCh chan update
	gameOver bool
}

var (
	singleLocalMaster *localMaster
	once              sync.Once
)

// NewLocalMaster returns a master that ends the game after maxTurns moves.
// The options set up the initial state.
func NewLocalMaster(maxTurns int, options ...game.Option) *localMaster {
	if maxTurns <= 0 {
		maxTurns = meta.MaxTurns
	}
	return &localMaster{options: options, maxTurns: maxTurns}
}

// GetLocalMaster returns a process wide master with the default settings
func GetLocalMaster() *localMaster {
	once.Do(func() {
		singleLocalMaster = NewLocalMaster(meta.MaxTurns)
	})
	return singleLocalMaster
}

// Init starts a new game and returns a copy of its initial state
func (m *localMaster) Init() (game.State, UpdateGetter) {
	m.Lock()
	defer m.Unlock()

	m.state = game.NewGameState(m.options...)
	m.turns = 0
	m.gameOver = false
	// Every turn sends at most one update, so Play never blocks
	updateCh := make(chan update, m.maxTurns)
	m.updateCh = updateCh

	return m.state.Copy(), func() (game.Move, game.State, bool) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return game.Move{}, nil, false
			}
			return u.move, u.state.Copy(), true
		default:
			// No updates yet
			return game.Move{}, nil, false
		}
	}
}

// Play applies move for the player to move if it is legal
func (m *localMaster) Play(move game.Move) error {
	m.Lock()
	defer m.Unlock()

	if m.state == nil {
		return fmt.Errorf("%w: game has not started", ErrIllegalMove)
	}
	if m.gameOver {
		return ErrGameOver
	}

	if utils.FindIndex(m.state.LegalMoves(), move) < 0 {
		return fmt.Errorf("%w: %s by player %d", ErrIllegalMove, move, m.state.Player())
	}

	m.state.Apply(move)
	m.turns++
	m.updateCh <- update{move: move, state: m.state.Copy()}

	if m.state.IsTerminal() || m.turns >= m.maxTurns {
		log.Debug().Int("winner", m.state.Winner()).Int("turns", m.turns).Msg("game over")
		m.gameOver = true
		close(m.updateCh)
	}
	return nil
}

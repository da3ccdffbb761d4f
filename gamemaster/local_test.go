package gamemaster

import (
	"quoridor/game"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalMasterInit(t *testing.T) {
	master := NewLocalMaster(10)
	state, getUpdate := master.Init()

	gs := state.(*game.GameState)
	require.True(t, gs.Equal(game.NewGameState()))

	_, _, ok := getUpdate()
	require.False(t, ok, "No update before the first move")

	// The returned state is a copy
	gs.Apply(game.Step(game.North))
	require.Equal(t, game.StartPosition(0), master.state.Pawns[0].Position)
}

func TestLocalMasterPlay(t *testing.T) {
	t.Run("legal move is applied and broadcast", func(t *testing.T) {
		master := NewLocalMaster(10)
		_, getUpdate := master.Init()

		require.NoError(t, master.Play(game.PlaceWall(game.NewWall(3, 3, game.Horizontal))))

		move, state, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, game.PlaceWall(game.NewWall(3, 3, game.Horizontal)), move)
		require.Equal(t, 1, state.Player())
		require.Equal(t, game.DefaultWallBudget-1, state.(*game.GameState).WallsRemaining[0])
	})

	t.Run("illegal moves are rejected without changing the state", func(t *testing.T) {
		master := NewLocalMaster(10)
		master.Init()
		require.NoError(t, master.Play(game.PlaceWall(game.NewWall(3, 3, game.Horizontal))))
		before := master.state.Copy()

		for _, move := range []game.Move{
			game.Step(game.North),                               // Off the board for player 1
			game.Jump(game.South),                               // No opponent to jump
			game.PlaceWall(game.NewWall(3, 3, game.Vertical)),   // Crosses
			game.PlaceWall(game.NewWall(8, 3, game.Horizontal)), // Out of bounds
			game.PlaceWall(game.NewWall(4, 3, game.Horizontal)), // Overlaps
		} {
			require.ErrorIs(t, master.Play(move), ErrIllegalMove, "%s", move)
		}
		require.True(t, before.Equal(master.state))
	})

	t.Run("moves before init are rejected", func(t *testing.T) {
		require.ErrorIs(t, NewLocalMaster(10).Play(game.Step(game.North)), ErrIllegalMove)
	})

	t.Run("winning move ends the game", func(t *testing.T) {
		master := NewLocalMaster(10, game.WithPawns(game.Position{X: 4, Y: 7}, game.Position{X: 0, Y: 4}))
		_, getUpdate := master.Init()

		require.NoError(t, master.Play(game.Step(game.North)))

		_, state, ok := getUpdate()
		require.True(t, ok, "Final update is delivered before the channel closes")
		require.Equal(t, 0, state.Winner())

		_, _, ok = getUpdate()
		require.False(t, ok)
		require.ErrorIs(t, master.Play(game.Step(game.South)), ErrGameOver)
	})

	t.Run("turn limit ends the game", func(t *testing.T) {
		master := NewLocalMaster(2)
		master.Init()
		require.NoError(t, master.Play(game.Step(game.East)))
		require.NoError(t, master.Play(game.Step(game.West)))
		require.ErrorIs(t, master.Play(game.Step(game.West)), ErrGameOver)
	})

	t.Run("init restarts a finished game", func(t *testing.T) {
		master := NewLocalMaster(1)
		master.Init()
		require.NoError(t, master.Play(game.Step(game.North)))
		master.Init()
		require.NoError(t, master.Play(game.Step(game.North)))
	})
}

func TestLocalMasterConcurrentPlay(t *testing.T) {
	master := NewLocalMaster(10)
	_, getUpdate := master.Init()

	// Both goroutines try a step north, which is only legal for player 0
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = master.Play(game.Step(game.North))
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, ErrIllegalMove)
			failures++
		}
	}
	require.Equal(t, 1, failures)

	_, _, ok := getUpdate()
	require.True(t, ok)
	_, _, ok = getUpdate()
	require.False(t, ok, "Only the accepted move is broadcast")
}

func TestGetLocalMaster(t *testing.T) {
	require.Same(t, GetLocalMaster(), GetLocalMaster())
	state, _ := GetLocalMaster().Init()
	require.False(t, state.IsTerminal())
}

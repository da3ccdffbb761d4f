package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWallSlots(t *testing.T) {
	require.Equal(t, [3]slot{{6, 9}, {7, 9}, {8, 9}}, NewWall(3, 4, Horizontal).Slots())
	require.Equal(t, [3]slot{{7, 8}, {7, 9}, {7, 10}}, NewWall(3, 4, Vertical).Slots())

	// Every footprint of an in-bounds wall stays in the slot grid
	for y := 0; y <= maxAnchor; y++ {
		for x := 0; x <= maxAnchor; x++ {
			for _, o := range Orientations {
				for _, s := range NewWall(x, y, o).Slots() {
					require.True(t, s.inBounds())
				}
			}
		}
	}
}

func TestWallInBounds(t *testing.T) {
	require.True(t, NewWall(0, 0, Horizontal).InBounds())
	require.True(t, NewWall(7, 7, Vertical).InBounds())
	require.False(t, NewWall(8, 0, Horizontal).InBounds())
	require.False(t, NewWall(0, 8, Vertical).InBounds())
	require.False(t, NewWall(-1, 3, Horizontal).InBounds())
}

func TestWallOverlaps(t *testing.T) {
	h := NewWall(3, 4, Horizontal)
	require.True(t, h.Overlaps(h))
	require.True(t, h.Overlaps(NewWall(4, 4, Horizontal)))
	require.True(t, h.Overlaps(NewWall(2, 4, Horizontal)))
	require.False(t, h.Overlaps(NewWall(5, 4, Horizontal)), "Walls end to end should not overlap")
	require.False(t, h.Overlaps(NewWall(3, 5, Horizontal)))
	require.False(t, h.Overlaps(NewWall(3, 4, Vertical)), "Perpendicular walls never overlap")

	v := NewWall(3, 4, Vertical)
	require.True(t, v.Overlaps(NewWall(3, 5, Vertical)))
	require.True(t, v.Overlaps(NewWall(3, 3, Vertical)))
	require.False(t, v.Overlaps(NewWall(3, 6, Vertical)))
	require.False(t, v.Overlaps(NewWall(4, 4, Vertical)))
}

func TestWallCrosses(t *testing.T) {
	t.Run("perpendicular walls sharing a midpoint cross", func(t *testing.T) {
		require.True(t, NewWall(4, 7, Horizontal).Crosses(NewWall(4, 7, Vertical)))
		require.True(t, NewWall(4, 7, Vertical).Crosses(NewWall(4, 7, Horizontal)))
	})

	t.Run("walls touching at an end do not cross", func(t *testing.T) {
		require.False(t, NewWall(4, 7, Horizontal).Crosses(NewWall(5, 6, Vertical)))
		require.False(t, NewWall(4, 7, Horizontal).Crosses(NewWall(3, 7, Vertical)))
	})

	t.Run("same orientation never crosses", func(t *testing.T) {
		require.False(t, NewWall(4, 7, Horizontal).Crosses(NewWall(4, 7, Horizontal)))
	})

	t.Run("crossing is symmetric", func(t *testing.T) {
		for ay := 0; ay <= maxAnchor; ay++ {
			for ax := 0; ax <= maxAnchor; ax++ {
				a := NewWall(ax, ay, Horizontal)
				for by := 0; by <= maxAnchor; by++ {
					for bx := 0; bx <= maxAnchor; bx++ {
						b := NewWall(bx, by, Vertical)
						require.Equal(t, a.Crosses(b), b.Crosses(a), "%s vs %s", a, b)
					}
				}
			}
		}
	})

	t.Run("crossing matches a shared junction slot", func(t *testing.T) {
		a := NewWall(2, 2, Horizontal)
		for by := 0; by <= maxAnchor; by++ {
			for bx := 0; bx <= maxAnchor; bx++ {
				b := NewWall(bx, by, Vertical)
				require.Equal(t, a.Slots()[1] == b.Slots()[1], a.Crosses(b))
			}
		}
	})
}

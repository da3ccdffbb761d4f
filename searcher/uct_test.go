package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCT(t *testing.T) {
	t.Run("unvisited child is explored first", func(t *testing.T) {
		require.Equal(t, math.Inf(1), uct(0, 0, CSquared*math.Log(10)))
	})

	t.Run("exploitation plus exploration", func(t *testing.T) {
		c2LnN := CSquared * math.Log(4)
		require.InDelta(t, 0.5+math.Sqrt(c2LnN/2), uct(1, 2, c2LnN), 1e-9)
	})

	t.Run("fewer visits explore more at equal value", func(t *testing.T) {
		c2LnN := CSquared * math.Log(100)
		require.Greater(t, uct(5, 10, c2LnN), uct(25, 50, c2LnN))
	})
}

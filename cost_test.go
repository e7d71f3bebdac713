package squeeze

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetCostFixed_LiteralBitLength(t *testing.T) {
	require.Equal(t, 8.0, GetCostFixed('a', 0))
	require.Equal(t, 9.0, GetCostFixed(200, 0))
}

func TestGetCostFixed_MatchIncludesExtraBits(t *testing.T) {
	c := GetCostFixed(258, 1)
	require.Greater(t, c, 0.0)

	shorter := GetCostFixed(3, 1)
	require.NotEqual(t, c, shorter)

	// Lengths 10 and 11 share a 7-bit code length; 11 adds one extra bit.
	require.Equal(t, GetCostFixed(10, 1)+1, GetCostFixed(11, 1))
}

func TestGetCostStat_ZeroFrequencySymbolStillFinite(t *testing.T) {
	stats := NewSymbolStats()
	c := GetCostStat('z', 0, stats)
	require.Greater(t, c, 0.0)
}

func TestMinSymbolCost_NeverExceedsAnyMatchCost(t *testing.T) {
	model := FixedCostModel()
	mincost := MinSymbolCost(model)

	for _, length := range []int{3, 10, 100, 258} {
		for _, dist := range distanceSymbolBase {
			require.LessOrEqual(t, mincost, model(length, dist)+1e-9)
		}
	}
}

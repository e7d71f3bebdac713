package squeeze

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateStatistics_ZeroFreqIsFinitePositive(t *testing.T) {
	stats := NewSymbolStats()
	stats.LitLenFreqs['a'] = 100
	CalculateStatistics(stats)

	for i, bl := range stats.LitLenBitLens {
		require.False(t, math.IsInf(bl, 0) || math.IsNaN(bl))
		require.GreaterOrEqual(t, bl, 0.0)
		if stats.LitLenFreqs[i] == 0 {
			require.Greater(t, bl, 0.0, "symbol %d must have a finite positive bit length even if unseen", i)
		}
	}
}

func TestCalculateStatistics_MoreFrequentIsCheaper(t *testing.T) {
	stats := NewSymbolStats()
	stats.LitLenFreqs['a'] = 1000
	stats.LitLenFreqs['b'] = 1
	CalculateStatistics(stats)

	require.Less(t, stats.LitLenBitLens['a'], stats.LitLenBitLens['b'])
}

func TestGetStatistics_CountsLiteralsAndMatches(t *testing.T) {
	var store Store
	StoreLitLenDist('x', 0, 0, &store)
	StoreLitLenDist('x', 0, 1, &store)
	StoreLitLenDist(10, 5, 2, &store)

	stats := NewSymbolStats()
	GetStatistics(&store, stats)

	require.EqualValues(t, 2, stats.LitLenFreqs['x'])
	require.EqualValues(t, 1, stats.LitLenFreqs[257+lengthSymbol(10)])
	require.EqualValues(t, 1, stats.DistFreqs[distSymbol(5)])
	require.EqualValues(t, 1, stats.LitLenFreqs[endOfBlockSymbol])
}

func TestCopyStats_IsIndependent(t *testing.T) {
	src := NewSymbolStats()
	src.LitLenFreqs['a'] = 5
	CalculateStatistics(src)

	dst := NewSymbolStats()
	CopyStats(src, dst)
	src.LitLenFreqs['a'] = 50
	CalculateStatistics(src)

	require.NotEqual(t, src.LitLenBitLens['a'], dst.LitLenBitLens['a'])
}

func TestRandomizeStatFreqs_IsDeterministicPerSeed(t *testing.T) {
	base := NewSymbolStats()
	base.LitLenFreqs['a'] = 40
	base.LitLenFreqs['b'] = 10
	CalculateStatistics(base)

	s1 := NewSymbolStats()
	CopyStats(base, s1)
	RandomizeStatFreqs(newRNG(7, 11), s1)

	s2 := NewSymbolStats()
	CopyStats(base, s2)
	RandomizeStatFreqs(newRNG(7, 11), s2)

	require.Equal(t, s1.LitLenFreqs, s2.LitLenFreqs)
}

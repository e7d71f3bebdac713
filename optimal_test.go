package squeeze

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLZ77OptimalFixed_LosslessAndIdempotent(t *testing.T) {
	in := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox")

	store1, err := LZ77OptimalFixed(in, 0, len(in))
	require.NoError(t, err)
	require.Equal(t, in, store1.Decode())

	store2, err := LZ77OptimalFixed(in, 0, len(in))
	require.NoError(t, err)
	require.Equal(t, store1.Symbols, store2.Symbols, "lz77 optimal fixed must be idempotent on the same input")
}

func TestLZ77OptimalFixed_NeverExceedsGreedy(t *testing.T) {
	in := bytes.Repeat([]byte("banana bandana banana"), 20)

	m := NewMatcher()
	var greedyStore Store
	LZ77Greedy(in, 0, len(in), m, &greedyStore)
	greedyCost := CalculateBlockSize(&greedyStore, true)

	optimalStore, err := LZ77OptimalFixed(in, 0, len(in))
	require.NoError(t, err)
	optimalCost := CalculateBlockSize(optimalStore, true)

	require.LessOrEqual(t, optimalCost, greedyCost)
}

func TestLZ77Optimal_DeterministicForFixedSeed(t *testing.T) {
	in := make([]byte, 4096)
	rand.New(rand.NewSource(42)).Read(in)

	opts := DefaultOptions()
	opts.NumIterations = 4

	store1, _, err := LZ77Optimal(in, 0, len(in), opts)
	require.NoError(t, err)
	store2, _, err := LZ77Optimal(in, 0, len(in), opts)
	require.NoError(t, err)

	require.Equal(t, store1.Symbols, store2.Symbols)
}

func TestLZ77Optimal_BestCostNeverExceedsGreedy(t *testing.T) {
	in := make([]byte, 65536)
	rand.New(rand.NewSource(7)).Read(in)
	// force some redundancy so matches exist to optimize over
	copy(in[30000:], in[:20000])

	m := NewMatcher()
	var greedyStore Store
	LZ77Greedy(in, 0, len(in), m, &greedyStore)
	greedyCost := CalculateBlockSize(&greedyStore, false)

	opts := DefaultOptions()
	opts.NumIterations = 15

	store, _, err := LZ77Optimal(in, 0, len(in), opts)
	require.NoError(t, err)
	require.LessOrEqual(t, CalculateBlockSize(store, false), greedyCost)
	require.Equal(t, in, store.Decode())
}

func TestLZ77Optimal_ZeroIterationsReturnsGreedySeed(t *testing.T) {
	in := []byte("repeat repeat repeat repeat")

	m := NewMatcher()
	var greedyStore Store
	LZ77Greedy(in, 0, len(in), m, &greedyStore)

	opts := DefaultOptions()
	opts.NumIterations = 0

	store, _, err := LZ77Optimal(in, 0, len(in), opts)
	require.NoError(t, err)
	require.Equal(t, greedyStore.Symbols, store.Symbols)
}

func TestLZ77Optimal_TwoIdenticalWindows(t *testing.T) {
	// Random bytes have no long repeats inside one window, so the only long
	// matches in the second window are the ones exactly one window back.
	window := bytes.Repeat([]byte{0x5A}, 512)
	rand.New(rand.NewSource(512)).Read(window)
	in := append(append([]byte{}, window...), window...)

	store, err := LZ77OptimalFixed(in, 0, len(in))
	require.NoError(t, err)
	require.Equal(t, in, store.Decode())

	foundLongDistanceMatch := false
	for _, sym := range store.Symbols {
		if !sym.IsLiteral() && sym.Dist == 512 {
			foundLongDistanceMatch = true
			break
		}
	}
	require.True(t, foundLongDistanceMatch, "expected at least one match referencing the first window")
}

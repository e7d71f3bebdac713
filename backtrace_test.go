package squeeze

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraceBackwards_EmptyBlock(t *testing.T) {
	require.Nil(t, TraceBackwards(nil, 0))
}

func TestTraceBackwards_SumsToBlocksize(t *testing.T) {
	in := bytes.Repeat([]byte("mississippi"), 30)
	m := NewMatcher()
	_, lengthArray := GetBestLengths(in, 0, len(in), FixedCostModel(), m, true)
	path := TraceBackwards(lengthArray, len(in))

	sum := 0
	for _, length := range path {
		require.True(t, length == 1 || (length >= MinMatch && length <= MaxMatch))
		sum += length
	}
	require.Equal(t, len(in), sum)
}

func TestFollowPath_LosslessReplay(t *testing.T) {
	in := []byte("abcabcabcabc xyz xyz xyz")
	m := NewMatcher()
	_, lengthArray := GetBestLengths(in, 0, len(in), FixedCostModel(), m, true)
	path := TraceBackwards(lengthArray, len(in))

	store := &Store{}
	require.NoError(t, FollowPath(in, 0, len(in), path, NewMatcher(), store))
	require.Equal(t, in, store.Decode())
	require.Equal(t, len(in), store.TotalLength())
}

func TestFollowPath_RejectsWrongPath(t *testing.T) {
	in := []byte("abcabcabcabc")
	badPath := []int{len(in) + 1}
	store := &Store{}
	require.Error(t, FollowPath(in, 0, len(in), badPath, NewMatcher(), store))
}

package squeeze

// TraceBackwards walks lengthArray (as produced by GetBestLengths) from
// blocksize back to 0, collecting each edge's length, then reverses the
// result into forward order — the "C4" backward trace of spec.md §4.4.
// The result is a sequence of edge lengths (1 for a literal, >=MinMatch
// for a match); it carries no distances, since GetBestLengths only ever
// recorded the winning length at each offset.
func TraceBackwards(lengthArray []int, blocksize int) []int {
	if blocksize == 0 {
		return nil
	}

	var path []int
	for index := blocksize; index > 0; {
		length := lengthArray[index]
		path = append(path, length)
		index -= length
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// FollowPath replays path starting at instart, re-deriving each match's
// distance by re-querying m (path only carries lengths) and appending the
// resulting symbols to store. It advances m's hash chain over every
// skipped position inside a match exactly as GetBestLengths would have,
// so a matcher reused afterward (e.g. for the next block) sees consistent
// state.
//
// Every reconstructed match is checked with VerifyLenDist before being
// stored; a mismatch means the path and the input buffer have diverged
// (spec.md §4.4, "replay").
func FollowPath(in []byte, instart, inend int, path []int, m *Matcher, store *Store) error {
	windowStart := 0
	if instart > WindowSize {
		windowStart = instart - WindowSize
	}
	m.Reset()
	for i := windowStart; i < instart; i++ {
		m.Update(in, i, inend)
	}

	pos := instart
	for _, length := range path {
		if pos >= inend {
			return ErrInternal
		}
		m.Update(in, pos, inend)

		if length == 1 {
			StoreLitLenDist(int(in[pos]), 0, pos, store)
			pos++
			continue
		}

		found, dist := m.FindLongestMatch(in, pos, inend, length, nil)
		if dist == 0 || found < length {
			return ErrInternal
		}
		if err := VerifyLenDist(in, inend, pos, dist, length); err != nil {
			return err
		}
		StoreLitLenDist(length, dist, pos, store)

		for k := 1; k < length; k++ {
			m.Update(in, pos+k, inend)
		}
		pos += length
	}

	if pos != inend {
		return ErrInternal
	}
	return nil
}

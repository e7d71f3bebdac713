package squeeze

// LZ77Greedy parses [instart, inend) in one pass, always taking the
// longest match the matcher reports with no lookahead or lazy matching —
// grounded on the teacher's compress9x.go main loop with the lazy-match
// step removed. It seeds LZ77Optimal's first statistics pass (spec.md
// §4.5.a) and is cheap enough to run once per call regardless of
// NumIterations.
func LZ77Greedy(in []byte, instart, inend int, m *Matcher, store *Store) {
	windowStart := 0
	if instart > WindowSize {
		windowStart = instart - WindowSize
	}
	m.Reset()
	for i := windowStart; i < instart; i++ {
		m.Update(in, i, inend)
	}

	pos := instart
	for pos < inend {
		m.Update(in, pos, inend)
		length, dist := m.FindLongestMatch(in, pos, inend, MaxMatch, nil)

		if length >= MinMatch {
			StoreLitLenDist(length, dist, pos, store)
			for k := 1; k < length; k++ {
				pos++
				if pos < inend {
					m.Update(in, pos, inend)
				}
			}
			pos++
			continue
		}

		StoreLitLenDist(int(in[pos]), 0, pos, store)
		pos++
	}
}

package squeeze

// GetBestLengths runs the forward shortest-path DP over [instart, inend) of
// in under model, the core "C3" operation of spec.md §4.3. costs[j] is the
// cheapest known bit cost to reach output offset j (j counted from
// instart), and lengthArray[j] is the length of the edge that achieved it
// (0 for the start, 1 for a literal, >=MinMatch for a match) — together
// they are exactly what TraceBackwards needs to recover the path.
//
// m is reset and rewarmed from max(0, instart-WindowSize) so that matches
// may reach back across instart into already-committed history, the way
// the teacher's slidingWindowDict is primed before any fast-path parse
// (sliding_window.go).
// useAccelerator toggles the same-byte-run fast path (spec.md §4.3.b,
// Options.UseAccelerator): disabling it forces every position in a long
// run to be priced individually, used by tests to confirm the accelerator
// never changes the DP's true bit cost, only how cheaply it gets there.
func GetBestLengths(in []byte, instart, inend int, model CostModel, m *Matcher, useAccelerator bool) (costs []float64, lengthArray []int) {
	blocksize := inend - instart
	costs = make([]float64, blocksize+1)
	lengthArray = make([]int, blocksize+1)
	if instart == inend {
		return costs, lengthArray
	}

	for i := 1; i <= blocksize; i++ {
		costs[i] = largeCost
	}
	costs[0] = 0
	lengthArray[0] = 0

	windowStart := 0
	if instart > WindowSize {
		windowStart = instart - WindowSize
	}
	m.Reset()
	for i := windowStart; i < instart; i++ {
		m.Update(in, i, inend)
	}

	mincost := MinSymbolCost(model)
	sublen := make([]int, MaxMatch+1)

	for i := instart; i < inend; i++ {
		j := i - instart
		m.Update(in, i, inend)

		// Same-byte-run accelerator (spec.md §4.3.b): deep inside a long run
		// of one repeated byte, every offset would otherwise independently
		// discover the same MaxMatch-length, distance-1 match. Jump
		// MaxMatch positions at a time instead of re-deriving it each time.
		if run := m.SameRun(i); useAccelerator && run > MaxMatch*2 &&
			i > instart+MaxMatch+1 &&
			i+MaxMatch*2+1 < inend &&
			m.SameRun(i-MaxMatch) > MaxMatch {
			symbolCost := model(MaxMatch, 1)
			for k := 0; k < MaxMatch; k++ {
				costs[j+MaxMatch] = costs[j] + symbolCost
				lengthArray[j+MaxMatch] = MaxMatch
				i++
				j++
				if i < inend {
					m.Update(in, i, inend)
				}
			}
		}

		length, _ := m.FindLongestMatch(in, i, inend, MaxMatch, sublen)

		if i+1 <= inend {
			newCost := costs[j] + model(int(in[i]), 0)
			if newCost < costs[j+1] {
				costs[j+1] = newCost
				lengthArray[j+1] = 1
			}
		}

		for k := MinMatch; k <= length; k++ {
			if j+k >= len(costs) {
				break
			}
			// Prune (spec.md §4.3.e): calling model is comparatively
			// expensive, so skip it whenever the cheapest possible symbol
			// cost still couldn't beat what's already at costs[j+k]. Uses
			// <= rather than < deliberately: a tie leaves the existing
			// (possibly literal) edge in place rather than replacing it.
			if costs[j+k]-costs[j] <= mincost {
				continue
			}
			newCost := costs[j] + model(k, sublen[k])
			if newCost < costs[j+k] {
				costs[j+k] = newCost
				lengthArray[j+k] = k
			}
		}
	}

	return costs, lengthArray
}

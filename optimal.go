package squeeze

// LZ77OptimalFixed runs a single forward DP pass under the fixed DEFLATE
// Huffman tree and replays the resulting path into a new store (spec.md
// §5, "fixed single-shot variant"). It takes no Options: there is nothing
// to iterate or randomize when the cost model never changes.
func LZ77OptimalFixed(in []byte, instart, inend int) (*Store, error) {
	m := AcquireMatcher()
	defer ReleaseMatcher(m)

	_, lengthArray := GetBestLengths(in, instart, inend, FixedCostModel(), m, true)
	path := TraceBackwards(lengthArray, inend-instart)

	store := &Store{}
	if err := FollowPath(in, instart, inend, path, m, store); err != nil {
		return nil, err
	}
	return store, nil
}

// LZ77Optimal is the iterative, statistics-driven driver (spec.md §4.5,
// "C5"): a greedy parse seeds an initial symbol-frequency table, then each
// iteration re-parses the whole range under a cost model driven by the
// current statistics, measures the true bit cost of the resulting store,
// and keeps the best store (and the stats that produced it) seen across
// all iterations. After every iteration, stats is always recomputed fresh
// from that iteration's store (step d); once a stagnation kick has fired
// at least once, the fresh stats are damped by blending in the previous
// iteration's stats (step e). A run of iterations whose true cost stops
// improving is kicked out of the local optimum by resetting stats to the
// best known ones and randomizing them (step f), but only once the search
// has had a few iterations to settle (`iter > 5`) and only when the cost
// is exactly unchanged from the previous iteration. NumIterations == 0
// returns the greedy parse itself, untouched.
//
// It returns the best store found and the statistics that produced it.
func LZ77Optimal(in []byte, instart, inend int, opts *Options) (*Store, *SymbolStats, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	log := opts.logger()

	m := AcquireMatcher()
	defer ReleaseMatcher(m)

	current := &Store{}
	LZ77Greedy(in, instart, inend, m, current)

	stats := NewSymbolStats()
	GetStatistics(current, stats)

	best := &Store{}
	CopyStore(current, best)
	bestCost := CalculateBlockSize(best, false)

	beststats := NewSymbolStats()
	CopyStats(stats, beststats)

	laststats := NewSymbolStats()
	r := newRNG(opts.Seed1, opts.Seed2)
	lastCost := -1.0
	lastRandomStep := -1

	for iter := 0; iter < opts.NumIterations; iter++ {
		InitStore(current)

		model := StatCostModel(stats)
		_, lengthArray := GetBestLengths(in, instart, inend, model, m, opts.UseAccelerator)
		path := TraceBackwards(lengthArray, inend-instart)
		if err := FollowPath(in, instart, inend, path, m, current); err != nil {
			return nil, nil, err
		}

		cost := CalculateBlockSize(current, false)
		log.Debugw("lz77 optimal iteration", "iteration", iter, "cost", cost, "bestCost", bestCost)

		// c. Keep this iteration's store and the stats that produced it if
		// it is the best true cost seen so far.
		if cost < bestCost {
			CopyStore(current, best)
			CopyStats(stats, beststats)
			bestCost = cost
		}

		// d. Stats always get recomputed fresh from what this iteration
		// actually produced, regardless of how it compared to bestcost.
		CopyStats(stats, laststats)
		GetStatistics(current, stats)

		// e. Once a randomization has happened at least once, damp the
		// fresh stats by blending in the previous iteration's.
		if lastRandomStep != -1 {
			blended := NewSymbolStats()
			AddWeighedStatFreqs(stats, 1.0, laststats, 0.5, blended)
			CopyStats(blended, stats)
		}

		// f. Stagnation kick: once the search has settled in a bit and the
		// true cost has stopped moving, jump back to the best stats known
		// and perturb them instead of continuing to refine a plateau.
		if iter > 5 && cost == lastCost {
			CopyStats(beststats, stats)
			RandomizeStatFreqs(r, stats)
			lastRandomStep = iter
		}

		lastCost = cost
	}

	return best, beststats, nil
}

package squeeze

// CostModel estimates the number of bits it would cost to emit one symbol:
// a literal byte when dist == 0 (litLen is the byte value), or a back
// reference of length litLen at distance dist otherwise. This is the
// pluggable cost-model contract of spec.md §6 that the forward DP is
// written against.
type CostModel func(litLen, dist int) float64

// FixedCostModel returns a CostModel using DEFLATE's fixed Huffman tree
// (RFC 1951 §3.2.6): literals 0-143 cost 8 bits, 144-255 cost 9 bits,
// length codes 257-279 cost 7 bits and 280-287 cost 8 bits, distance codes
// always cost 5 bits, both plus their RFC-mandated extra bits.
func FixedCostModel() CostModel {
	return GetCostFixed
}

// GetCostFixed is the fixed-tree cost model (spec.md §6, "fixed cost
// model"). It ignores any observed statistics entirely.
func GetCostFixed(litLen, dist int) float64 {
	if dist == 0 {
		if litLen <= 143 {
			return 8
		}
		return 9
	}
	ls := lengthSymbol(litLen)
	lengthBits := 7.0
	if 257+ls >= 280 {
		lengthBits = 8
	}
	ds := distSymbol(dist)
	return lengthBits + float64(lengthExtraBits[ls]) + 5 + float64(distExtraBits[ds])
}

// StatCostModel returns a CostModel driven by stats's bit-length tables
// (spec.md §6, "statistical cost model"). stats must already have had
// CalculateStatistics run on it; the returned closure reads it live, so
// mutating stats in place (e.g. via GetStatistics) changes the model's
// output on the next call.
func StatCostModel(stats *SymbolStats) CostModel {
	return func(litLen, dist int) float64 {
		return GetCostStat(litLen, dist, stats)
	}
}

// GetCostStat is the statistics-driven cost model.
func GetCostStat(litLen, dist int, stats *SymbolStats) float64 {
	if dist == 0 {
		return stats.LitLenBitLens[litLen]
	}
	ls := lengthSymbol(litLen)
	ds := distSymbol(dist)
	return stats.LitLenBitLens[257+ls] + float64(lengthExtraBits[ls]) +
		stats.DistBitLens[ds] + float64(distExtraBits[ds])
}

// MinSymbolCost returns a lower bound on the cost of any single match
// symbol under model (spec.md §4.2, "C2"), used by the forward DP to
// prune inner-loop work: for any match of length k at offset j,
// model(k, dist) >= MinSymbolCost, so once costs[j+k]-costs[j] is already
// <= this bound, no match can improve costs[j+k] and pricing it exactly
// is unnecessary.
//
// It scans every length symbol in [MinMatch, MaxMatch] paired with
// distance 1 to find the cheapest length l*, independently scans the 30
// distance-symbol boundaries paired with length MinMatch to find the
// cheapest distance d*, and returns model(l*, d*). Scanning only the 30
// boundaries rather than all WindowSize distances is exact for this lower
// bound because every distance within one symbol shares that symbol's
// cost floor.
func MinSymbolCost(model CostModel) float64 {
	bestLength := MinMatch
	bestLengthCost := largeCost
	for length := MinMatch; length <= MaxMatch; length++ {
		c := model(length, 1)
		if c < bestLengthCost {
			bestLengthCost = c
			bestLength = length
		}
	}

	bestDist := 1
	bestDistCost := largeCost
	for _, d := range distanceSymbolBase {
		c := model(MinMatch, d)
		if c < bestDistCost {
			bestDistCost = c
			bestDist = d
		}
	}

	return model(bestLength, bestDist)
}

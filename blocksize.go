package squeeze

// approxTreeDescriptionBits estimates the bit cost of describing one
// Huffman tree in a DEFLATE dynamic block header (RFC 1951 §3.2.7: the
// code-length alphabet, its own compressed code lengths, and the
// RLE-coded table). Building the actual header is the out-of-scope
// Huffman-tree-construction collaborator (spec.md §1); this module only
// needs a comparable per-iteration total, so each used symbol is charged a
// fixed average cost rather than the header's true, highly variable size.
// This is a deliberate simplification, not a grounding gap: no example in
// the retrieved pack implements RFC 1951 header encoding.
const approxTreeDescriptionBits = 7.0

// CalculateBlockSize returns the estimated total bit cost of encoding
// store's symbols as one DEFLATE block (spec.md §4.5.c/d, "true bit
// cost"). Unlike the DP's running cost estimate, this always measures
// against statistics derived fresh from store itself (or the fixed tree),
// so it reflects what the symbols in store would actually cost to encode
// rather than what the stats used to produce them predicted.
func CalculateBlockSize(store *Store, fixed bool) float64 {
	if fixed {
		total := 0.0
		for _, sym := range store.Symbols {
			total += GetCostFixed(sym.LitLen, sym.Dist)
		}
		return total
	}

	stats := NewSymbolStats()
	GetStatistics(store, stats)

	total := 0.0
	for _, sym := range store.Symbols {
		total += GetCostStat(sym.LitLen, sym.Dist, stats)
	}
	total += approxTreeDescriptionBits * float64(countUsedSymbols(stats.LitLenFreqs[:])+countUsedSymbols(stats.DistFreqs[:]))
	return total
}

func countUsedSymbols(freqs []uint32) int {
	n := 0
	for _, f := range freqs {
		if f > 0 {
			n++
		}
	}
	return n
}

package squeeze

import "math"

// DEFLATE's literal/length alphabet has 288 codes (0-255 literal bytes, 256
// end-of-block, 257-285 length codes, 286-287 unused); the distance
// alphabet has 32 codes (30 used, RFC 1951 §3.2.5).
const (
	numLitLenSymbols = 288
	numDistSymbols   = 32
	endOfBlockSymbol = 256
)

// SymbolStats holds the two frequency histograms (literal/length and
// distance) and their derived bit-length tables (spec.md §3,
// "Symbol statistics"). Bit lengths here are entropy-estimated real
// numbers rather than integer Huffman code lengths: actual Huffman tree
// construction is an out-of-scope external collaborator (spec.md §1); this
// core only ever needs an estimated per-symbol bit cost, and the entropy
// estimate -log2(freq/total) is what the reference implementation's own
// statistics module computes internally before rounding.
type SymbolStats struct {
	LitLenFreqs [numLitLenSymbols]uint32
	DistFreqs   [numDistSymbols]uint32

	LitLenBitLens [numLitLenSymbols]float64
	DistBitLens   [numDistSymbols]float64
}

// NewSymbolStats returns a stats buffer with zero frequencies and the
// corresponding (finite) bit-length tables already calculated.
func NewSymbolStats() *SymbolStats {
	s := &SymbolStats{}
	CalculateStatistics(s)
	return s
}

// CopyStats replaces dst's contents with a copy of src's. stats,
// beststats, and laststats are independent buffers (spec.md §3,
// "Lifecycles") — always copy, never alias.
func CopyStats(src, dst *SymbolStats) {
	*dst = *src
}

// ClearStatFreqs zeroes the frequency histograms, leaving any previously
// calculated bit-length tables untouched until CalculateStatistics runs
// again.
func ClearStatFreqs(s *SymbolStats) {
	s.LitLenFreqs = [numLitLenSymbols]uint32{}
	s.DistFreqs = [numDistSymbols]uint32{}
}

// GetStatistics populates stats's frequencies from store's symbols and
// recalculates its bit-length tables.
func GetStatistics(store *Store, stats *SymbolStats) {
	ClearStatFreqs(stats)
	for _, sym := range store.Symbols {
		if sym.IsLiteral() {
			stats.LitLenFreqs[sym.LitLen]++
			continue
		}
		stats.LitLenFreqs[257+lengthSymbol(sym.LitLen)]++
		stats.DistFreqs[distSymbol(sym.Dist)]++
	}
	stats.LitLenFreqs[endOfBlockSymbol]++
	CalculateStatistics(stats)
}

// CalculateStatistics rebuilds the bit-length tables from the current
// frequencies.
func CalculateStatistics(stats *SymbolStats) {
	calcEntropy(stats.LitLenFreqs[:], stats.LitLenBitLens[:])
	calcEntropy(stats.DistFreqs[:], stats.DistBitLens[:])
}

// calcEntropy fills bitLens[i] with the estimated bit cost of symbol i
// given freqs. A symbol with zero frequency is treated as having occurred
// half a time (a standard Laplace-smoothing move) rather than being
// assigned zero cost — see spec.md §4.1: "must still be a finite positive
// value so that the DP never prefers an impossible path".
func calcEntropy(freqs []uint32, bitLens []float64) {
	var total uint64
	for _, f := range freqs {
		total += uint64(f)
	}

	switch {
	case total == 0:
		for i := range bitLens {
			bitLens[i] = 1
		}
	default:
		denom := float64(total)
		for i, f := range freqs {
			if f == 0 {
				bitLens[i] = -math.Log2(0.5 / (denom + 1))
				continue
			}
			bitLens[i] = -math.Log2(float64(f) / denom)
		}
	}
}

// AddWeighedStatFreqs combines two stats' frequencies with the given
// weights into out and recalculates out's bit-length tables (spec.md
// §4.5.e, damped averaging after a randomization step).
func AddWeighedStatFreqs(s1 *SymbolStats, w1 float64, s2 *SymbolStats, w2 float64, out *SymbolStats) {
	for i := range out.LitLenFreqs {
		out.LitLenFreqs[i] = uint32(w1*float64(s1.LitLenFreqs[i]) + w2*float64(s2.LitLenFreqs[i]))
	}
	for i := range out.DistFreqs {
		out.DistFreqs[i] = uint32(w1*float64(s1.DistFreqs[i]) + w2*float64(s2.DistFreqs[i]))
	}
	CalculateStatistics(out)
}

// RandomizeStatFreqs perturbs stats's frequencies using r (spec.md §4.5.f,
// the stagnation kick) and recalculates its bit-length tables.
func RandomizeStatFreqs(r *rng, stats *SymbolStats) {
	randomizeFreqs(r, stats.LitLenFreqs[:])
	randomizeFreqs(r, stats.DistFreqs[:])
	CalculateStatistics(stats)
}

// randomizeFreqs gives each frequency slot a 1-in-3 chance of being
// replaced by another randomly chosen slot's frequency, nudging the
// distribution away from whatever local optimum produced it without
// discarding its overall shape.
func randomizeFreqs(r *rng, freqs []uint32) {
	n := len(freqs)
	for i := 0; i < n; i++ {
		if r.intn(3) == 0 {
			freqs[i] = freqs[r.intn(n)]
		}
	}
}

package squeeze

// DEFLATE format constants (RFC 1951), fixed by the wire format this
// optimizer targets.
const (
	MinMatch   = 3     // shortest encodable back-reference length
	MaxMatch   = 258   // longest encodable back-reference length
	WindowSize = 32768 // maximum back-reference distance
	WindowMask = WindowSize - 1

	// largeCost is the sentinel "unreachable" cost. It must exceed any cost
	// actually achievable over a block so the DP never mistakes an
	// unvisited position for a cheap one.
	largeCost = 1e30
)

// distanceSymbolBase holds the lower bound of each of the 30 DEFLATE
// distance symbols (RFC 1951 §3.2.5). Used by MinSymbolCost to enumerate
// one representative distance per symbol rather than all 32768 distances.
var distanceSymbolBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
	33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
	1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

// lengthExtraBits and distExtraBits give the number of extra bits DEFLATE
// appends after a length/distance symbol code to pin down the exact value
// within the symbol's range.
var lengthExtraBits = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

var lengthSymbolBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var distExtraBits = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// lengthSymbol returns the DEFLATE length-code index (257..285, returned as
// 0-based 0..28) for a match length in [MinMatch, MaxMatch].
func lengthSymbol(length int) int {
	// lengthSymbolBase is sorted; find the largest base <= length.
	lo, hi := 0, len(lengthSymbolBase)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lengthSymbolBase[mid] <= length {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// distSymbol returns the DEFLATE distance-code index (0..29) for dist >= 1.
func distSymbol(dist int) int {
	lo, hi := 0, len(distanceSymbolBase)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if distanceSymbolBase[mid] <= dist {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

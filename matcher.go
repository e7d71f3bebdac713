package squeeze

import "github.com/cespare/xxhash/v2"

// noNode marks an empty hash-chain slot (positions are stored as pos+1, so
// 0 unambiguously means "nothing here yet" — the same bias the teacher's
// slidingWindowDict uses for hashHead2/hashHead3).
const noNode = 0

const (
	matchHashBits = 16
	matchHashSize = 1 << matchHashBits
	matchHashMask = matchHashSize - 1

	// defaultMaxChainHits bounds how many hash-chain nodes FindLongestMatch
	// will probe before giving up on a longer match. Without this cap, a
	// pathological input (many repeats of the same 3-byte prefix) makes the
	// matcher, not the DP, the asymptotic bottleneck.
	defaultMaxChainHits = 4096
)

// Matcher is a hash-chain longest-match finder over a fully materialized
// input buffer, the "matcher" collaborator of spec.md §6. It is grounded on
// the teacher's slidingWindowDict (sliding_window.go) and high-compression
// dictionary (compress_1x_999.go): a hash of the next few bytes indexes a
// chain of earlier positions sharing that hash, walked newest-to-oldest.
// Unlike the teacher, the input here is never wrapped in a ring buffer —
// spec.md's core operates on a fully materialized byte range, so positions
// are absolute indices into the caller's slice and the chain is just
// windowed by distance instead of by ring geometry.
type Matcher struct {
	head  [matchHashSize]int32  // 3-byte hash -> newest position+1 (0 = empty)
	chain [WindowSize]int32     // position&WindowMask -> previous position+1 sharing the hash
	same  [WindowSize]uint16    // position&WindowMask -> run length of bytes equal to in[pos]

	maxChainHits int
}

// NewMatcher returns a matcher with an empty hash table, ready for Warmup.
func NewMatcher() *Matcher {
	return &Matcher{maxChainHits: defaultMaxChainHits}
}

// Reset clears the matcher's hash state so it can be reused for another,
// unrelated input (spec.md §5: "each [instance] with its own matcher").
func (m *Matcher) Reset() {
	clear(m.head[:])
	clear(m.chain[:])
	clear(m.same[:])
	if m.maxChainHits == 0 {
		m.maxChainHits = defaultMaxChainHits
	}
}

// SetMaxChainHits overrides the hash-chain probe depth (default
// defaultMaxChainHits). A depth of 0 restores the default.
func (m *Matcher) SetMaxChainHits(n int) {
	if n <= 0 {
		n = defaultMaxChainHits
	}
	m.maxChainHits = n
}

func hash3(in []byte, pos int) uint32 {
	return uint32(xxhash.Sum64(in[pos:pos+3])) & matchHashMask
}

// Warmup primes the hash chains and same-run table over [start, end) without
// searching for matches, the way spec.md §4.3 step 2 warms up from
// max(0, instart-WindowSize) through instart-1.
func (m *Matcher) Warmup(in []byte, start, end int) {
	for i := start; i < end; i++ {
		m.Update(in, i, end)
	}
}

// Update advances the rolling hash to absolute position i. end bounds how
// far the same-run scan may look ahead (normally len(in), or inend for a
// block-scoped call); it never reads in[j] for j >= end.
func (m *Matcher) Update(in []byte, i, end int) {
	if i+3 <= end && i+3 <= len(in) {
		key := hash3(in, i)
		prev := m.head[key]
		m.chain[i&WindowMask] = prev
		m.head[key] = int32(i + 1)
	} else {
		m.chain[i&WindowMask] = noNode
	}

	limit := end
	if limit > len(in) {
		limit = len(in)
	}

	amount := 0
	if i > 0 {
		if prevSame := int(m.same[(i-1)&WindowMask]); prevSame > 1 {
			amount = prevSame - 1
		}
	}
	for i+amount < limit && in[i] == in[i+amount] && amount < 0xffff {
		amount++
	}
	m.same[i&WindowMask] = uint16(amount)
}

// SameRun returns the matcher's cached run length of bytes equal to in[pos]
// starting at pos, as last computed by Update(in, pos, ...). Used by the
// forward DP's same-byte-run accelerator (spec.md §4.3.b).
func (m *Matcher) SameRun(pos int) int {
	return int(m.same[pos&WindowMask])
}

// FindLongestMatch returns the longest back-reference ending within
// [pos, pos+maxLen) and <= inEnd, or (0, 0) if none reaches MinMatch. When
// sublen is non-nil, sublen[k] for MinMatch <= k <= length is set to the
// distance at which a match of length k was found (spec.md §6, "sublen").
func (m *Matcher) FindLongestMatch(in []byte, pos, inEnd, maxLen int, sublen []int) (length, dist int) {
	if pos+MinMatch > inEnd {
		return 0, 0
	}

	limit := maxLen
	if rem := inEnd - pos; rem < limit {
		limit = rem
	}
	if limit > MaxMatch {
		limit = MaxMatch
	}

	node := m.chain[pos&WindowMask]
	bestLen, bestDist := 0, 0

	for hits := 0; node != noNode && hits < m.maxChainHits; hits++ {
		candidate := int(node) - 1
		d := pos - candidate
		if d <= 0 || d > WindowSize {
			break
		}

		if bestLen > 0 && bestLen < limit && in[candidate+bestLen] != in[pos+bestLen] {
			node = m.chain[candidate&WindowMask]
			continue
		}

		matched := countEqual(in, candidate, pos, limit)
		if matched >= MinMatch && matched > bestLen {
			if sublen != nil {
				for k := bestLen + 1; k <= matched && k < len(sublen); k++ {
					sublen[k] = d
				}
			}
			bestLen = matched
			bestDist = d
			if bestLen >= limit {
				break
			}
		}

		node = m.chain[candidate&WindowMask]
	}

	return bestLen, bestDist
}

// countEqual returns how many leading bytes of in[a:a+limit] and
// in[b:b+limit] agree.
func countEqual(in []byte, a, b, limit int) int {
	n := 0
	for n < limit && in[a+n] == in[b+n] {
		n++
	}
	return n
}
